// Copyright (C) 2025 MapleRisk Inc.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package services

import (
	"os"
	"time"

	"github.com/maplerisk/maplerisk/scan"
	"github.com/maplerisk/maplerisk/shared"
	"go.uber.org/fx"
)

// Module provides all service-layer constructors
var Module = fx.Options(
	fx.Provide(NewAssessmentService),
	fx.Provide(func(s *AssessmentService) shared.ProfileSubmitter {
		return s
	}),
	fx.Provide(NewWizardService),
	fx.Provide(fx.Annotate(func() *scan.Scanner {
		timeout := 15 * time.Second
		if v := os.Getenv("SCRAPER_TIMEOUT"); v != "" {
			if parsed, err := time.ParseDuration(v); err == nil {
				timeout = parsed
			}
		}
		return scan.NewScanner(timeout)
	}, fx.As(new(shared.WebsiteScanner)))),
	fx.Provide(NewScanService),
)
