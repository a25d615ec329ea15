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

package router

import (
	"github.com/labstack/echo/v4"
	"github.com/maplerisk/maplerisk/controllers"
)

type ScanRouter struct {
	*echo.Group
}

func NewScanRouter(
	apiV1Router APIV1Router,
	scanController *controllers.ScanController,
) ScanRouter {
	scanRouter := apiV1Router.Group.Group("/scraper")
	scanRouter.POST("/scan/", scanController.Scan)
	// quick assessment combines a scan with an immediate submit attempt
	scanRouter.POST("/quick-assessment/", scanController.QuickAssessment)

	return ScanRouter{Group: scanRouter}
}
