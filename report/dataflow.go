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

package report

import (
	"github.com/maplerisk/maplerisk/catalog"
	"github.com/maplerisk/maplerisk/dtos"
	"github.com/maplerisk/maplerisk/utils"
)

const noToolsSentinel = "No AI tools selected"

func dataRiskAssessment(profile dtos.BusinessProfile) dtos.DataRiskAssessment {
	tools := utils.Map(profile.AITools, catalog.ToolDisplayName)
	if len(tools) == 0 {
		tools = []string{noToolsSentinel}
	}
	crossBorder := utils.Any(profile.AITools, catalog.CrossBorderTool)

	flows := make([]dtos.DataFlow, 0, len(profile.DataTypes))
	exposure := make([]dtos.DataExposure, 0, len(profile.DataTypes))
	for _, dataType := range profile.DataTypes {
		flows = append(flows, dtos.DataFlow{
			DataType:    dataType,
			Label:       catalog.DataTypeLabel(dataType),
			Tools:       tools,
			RiskLevel:   flowRiskLevel(dataType),
			CrossBorder: crossBorder,
		})
		exposure = append(exposure, dtos.DataExposure{
			DataType: dataType,
			Label:    catalog.DataTypeLabel(dataType),
			Score:    exposureScore(dataType),
			Concerns: exposureConcerns(dataType),
		})
	}

	return dtos.DataRiskAssessment{
		Flows:            flows,
		ExposureAnalysis: exposure,
	}
}

// flowRiskLevel is a fixed per-data-type classification, independent of the
// overall score.
func flowRiskLevel(dataType string) dtos.RiskLevel {
	switch dataType {
	case "health_info":
		return dtos.RiskLevelCritical
	case "financial_info", "legal_documents":
		return dtos.RiskLevelHigh
	case "employee_records", "customer_contact":
		return dtos.RiskLevelMedium
	default:
		return dtos.RiskLevelLow
	}
}

func exposureScore(dataType string) int {
	switch dataType {
	case "health_info":
		return 85
	case "financial_info":
		return 75
	case "legal_documents":
		return 65
	case "employee_records":
		return 55
	case "customer_contact":
		return 45
	default:
		return 15
	}
}

func exposureConcerns(dataType string) []string {
	switch dataType {
	case "health_info":
		return []string{
			"Subject to the strictest consent requirements in every jurisdiction",
			"Breach notification is mandatory and fines are at the top of the range",
		}
	case "financial_info":
		return []string{
			"Attractive target for fraud if retained by a third party",
			"Payment industry rules apply on top of privacy law",
		}
	case "legal_documents":
		return []string{
			"Solicitor-client privilege can be lost through third-party disclosure",
		}
	case "employee_records":
		return []string{
			"Employees must be informed when their data is processed by AI tools",
		}
	case "customer_contact":
		return []string{
			"Consent obtained for one purpose does not cover AI processing",
		}
	default:
		return []string{
			"Low sensitivity, but attribution and accuracy of AI output still matter",
		}
	}
}
