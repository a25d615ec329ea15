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

// Package risk implements the scoring engine: a weighted linear aggregation
// of data exposure, tool risk and usage-pattern risk, reduced by safeguard
// credits and clamped to [0,100].
package risk

import (
	"math"

	"github.com/maplerisk/maplerisk/catalog"
	"github.com/maplerisk/maplerisk/dtos"
)

const (
	// every discrete tool adds operational surface on top of its base risk
	toolOperationalFactor = 5.0

	// display caps for the breakdown. The raw sums feed the total.
	dataExposureDisplayCap = 30.0
	toolRiskDisplayCap     = 15.0

	usageRiskNoRestrictions = 20.0
	usageRiskAllEmployees   = 15.0
	usageRiskContractors    = 12.0
	usageRiskDefault        = 10.0

	missingPolicyGap = 10.0
)

// ComputeRiskScore is total over any syntactically valid profile. Unknown
// catalog identifiers contribute zero and never raise.
func ComputeRiskScore(profile dtos.BusinessProfile) (int, dtos.RiskBreakdown) {
	dataExposureRaw := dataExposure(profile.DataTypes)
	toolRiskRaw := toolRisk(profile.AITools)
	usageRisk := usagePatternRisk(profile.UsagePatterns)
	safeguardCredit := safeguardCredit(profile.Safeguards)

	complianceGap := 0.0
	if !profile.HasWrittenPolicies {
		complianceGap = missingPolicyGap
	}

	base := math.Min(100, dataExposureRaw+toolRiskRaw+usageRisk)
	score := int(math.Round(math.Min(100, math.Max(0, base-safeguardCredit))))

	breakdown := dtos.RiskBreakdown{
		DataExposure:     math.Min(dataExposureRaw, dataExposureDisplayCap),
		ToolRisk:         math.Min(toolRiskRaw, toolRiskDisplayCap),
		UsagePatternRisk: usageRisk,
		ComplianceGap:    complianceGap,
		SafeguardCredit:  safeguardCredit,
		// the catalogs carry per-industry and per-province multipliers. They
		// are surfaced here for the report but intentionally not applied to
		// the arithmetic, matching the established scoring behaviour.
		IndustryMultiplier: 1.0,
		ProvinceMultiplier: 1.0,
	}
	if industry, ok := catalog.IndustryByID(profile.IndustryID); ok {
		breakdown.IndustryMultiplier = industry.RiskMultiplier
	}
	if province, ok := catalog.ProvinceByCode(profile.ProvinceCode); ok {
		breakdown.ProvinceMultiplier = province.RiskMultiplier
	}

	return score, breakdown
}

// LevelForScore is the single step function mapping a score onto a risk
// level. Every caller classifying a score goes through here.
func LevelForScore(score int) dtos.RiskLevel {
	switch {
	case score <= 25:
		return dtos.RiskLevelLow
	case score <= 50:
		return dtos.RiskLevelMedium
	case score <= 75:
		return dtos.RiskLevelHigh
	default:
		return dtos.RiskLevelCritical
	}
}

func dataExposure(dataTypes []string) float64 {
	sum := 0.0
	for _, value := range dataTypes {
		if dataType, ok := catalog.DataTypeByValue(value); ok {
			sum += float64(dataType.RiskScore)
		}
	}
	return sum
}

func toolRisk(tools []string) float64 {
	sum := 0.0
	for _, id := range tools {
		if tool, ok := catalog.AIToolByID(id); ok {
			sum += tool.BaseRiskScore * toolOperationalFactor
		}
	}
	return sum
}

// usagePatternRisk takes the single highest-risk pattern present, multi-select
// does not sum. An empty selection contributes nothing.
func usagePatternRisk(patterns []dtos.UsagePattern) float64 {
	if len(patterns) == 0 {
		return 0
	}
	risk := 0.0
	for _, pattern := range patterns {
		var r float64
		switch pattern {
		case dtos.UsagePatternNoRestrictions:
			r = usageRiskNoRestrictions
		case dtos.UsagePatternAllEmployees:
			r = usageRiskAllEmployees
		case dtos.UsagePatternContractors:
			r = usageRiskContractors
		default:
			r = usageRiskDefault
		}
		if r > risk {
			risk = r
		}
	}
	return risk
}

// safeguardCredit is deliberately uncapped, a well-protected business can
// zero out its score.
func safeguardCredit(safeguards []string) float64 {
	sum := 0.0
	for _, value := range safeguards {
		if safeguard, ok := catalog.SafeguardByValue(value); ok {
			sum += float64(safeguard.Credit)
		}
	}
	return sum
}
