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

// Package report derives the structured compliance report from a scored
// business profile. Every section is an independent, deterministic function
// of (profile, score, level), there is no cross-section state.
package report

import (
	"github.com/maplerisk/maplerisk/dtos"
	"github.com/maplerisk/maplerisk/risk"
)

// Derive never fails for a well-formed profile, it is presentation logic over
// already validated data. Identity fields (id, assessment id, timestamps) are
// assigned by the caller.
func Derive(profile dtos.BusinessProfile, score int, level dtos.RiskLevel) dtos.Report {
	_, breakdown := risk.ComputeRiskScore(profile)

	return dtos.Report{
		RiskScore:              score,
		RiskLevel:              level,
		ExecutiveSummary:       executiveSummary(profile, score, level, breakdown),
		LegalCompliance:        legalCompliance(profile),
		DataRiskAssessment:     dataRiskAssessment(profile),
		BusinessImpact:         businessImpact(profile, level),
		CommunicationTemplates: communicationTemplates(profile),
		ActionPlan:             actionPlan(),
	}
}
