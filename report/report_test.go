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
	"strings"
	"testing"

	"github.com/maplerisk/maplerisk/dtos"
	"github.com/maplerisk/maplerisk/risk"
	"github.com/stretchr/testify/assert"
)

func scoredProfile(profile dtos.BusinessProfile) dtos.Report {
	score, _ := risk.ComputeRiskScore(profile)
	return Derive(profile, score, risk.LevelForScore(score))
}

func TestDerive(t *testing.T) {
	t.Run("report carries the score and level it was derived with", func(t *testing.T) {
		profile := dtos.BusinessProfile{
			BusinessName: "Shield Accounting",
			IndustryID:   "accounting",
			ProvinceCode: "BC",
			AITools:      []string{"chatgpt"},
			DataTypes:    []string{"financial_info"},
		}
		score, _ := risk.ComputeRiskScore(profile)
		level := risk.LevelForScore(score)

		reportDTO := Derive(profile, score, level)

		assert.Equal(t, score, reportDTO.RiskScore)
		assert.Equal(t, level, reportDTO.RiskLevel)
		assert.Equal(t, score, reportDTO.ExecutiveSummary.RiskScore)
		assert.Equal(t, level, reportDTO.ExecutiveSummary.RiskLevel)
	})

	t.Run("derivation is deterministic", func(t *testing.T) {
		profile := dtos.BusinessProfile{
			BusinessName:  "North Star Legal",
			IndustryID:    "legal",
			ProvinceCode:  "AB",
			AITools:       []string{"claude", "grammarly"},
			DataTypes:     []string{"legal_documents", "customer_contact"},
			UsagePatterns: []dtos.UsagePattern{dtos.UsagePatternAllEmployees},
			Safeguards:    []string{"access_controls"},
		}

		first := scoredProfile(profile)
		second := scoredProfile(profile)

		assert.Equal(t, first, second)
	})
}

func TestExecutiveSummary(t *testing.T) {
	t.Run("top risks are capped at four", func(t *testing.T) {
		// profile triggers all six rules
		profile := dtos.BusinessProfile{
			BusinessName: "Everything Wrong Inc",
			IndustryID:   "retail",
			ProvinceCode: "ON",
			AITools:      []string{"chatgpt"},
			DataTypes:    []string{"health_info"},
		}

		reportDTO := scoredProfile(profile)

		assert.Len(t, reportDTO.ExecutiveSummary.TopRisks, 4)
	})

	t.Run("chatgpt raises a training-data risk", func(t *testing.T) {
		profile := dtos.BusinessProfile{
			BusinessName:       "Chat Shop",
			IndustryID:         "retail",
			ProvinceCode:       "MB",
			AITools:            []string{"chatgpt"},
			HasWrittenPolicies: true,
			Safeguards:         []string{"customer_consent", "ai_privacy_policy"},
		}

		reportDTO := scoredProfile(profile)

		assert.NotEmpty(t, reportDTO.ExecutiveSummary.TopRisks)
		assert.Contains(t, reportDTO.ExecutiveSummary.TopRisks[0], "ChatGPT")
	})

	t.Run("fully safeguarded tool-free profile has no top risks", func(t *testing.T) {
		profile := dtos.BusinessProfile{
			BusinessName:       "Quiet Books",
			IndustryID:         "accounting",
			ProvinceCode:       "SK",
			HasWrittenPolicies: true,
			Safeguards:         []string{"customer_consent", "ai_privacy_policy"},
		}

		reportDTO := scoredProfile(profile)

		assert.Empty(t, reportDTO.ExecutiveSummary.TopRisks)
		assert.NotEmpty(t, reportDTO.ExecutiveSummary.QuickWins)
	})

	t.Run("unknown industry still produces a narrative", func(t *testing.T) {
		profile := dtos.BusinessProfile{
			BusinessName: "Mystery Co",
			IndustryID:   "submarine_racing",
			ProvinceCode: "NS",
		}

		reportDTO := scoredProfile(profile)

		assert.NotEmpty(t, reportDTO.ExecutiveSummary.IndustryContext)
		assert.NotEmpty(t, reportDTO.ExecutiveSummary.ProvinceContext)
	})
}

func TestLegalCompliance(t *testing.T) {
	t.Run("consent plus disclosure satisfies PIPEDA", func(t *testing.T) {
		profile := dtos.BusinessProfile{
			BusinessName: "Compliant Cafe",
			IndustryID:   "hospitality",
			ProvinceCode: "ON",
			Safeguards:   []string{"customer_consent", "ai_privacy_policy"},
		}

		reportDTO := scoredProfile(profile)

		assert.True(t, reportDTO.LegalCompliance.PIPEDAStatus.Compliant)
		assert.Empty(t, reportDTO.LegalCompliance.PIPEDAStatus.Issues)
	})

	t.Run("missing disclosure fails PIPEDA with one issue", func(t *testing.T) {
		profile := dtos.BusinessProfile{
			BusinessName: "Half Way There",
			IndustryID:   "retail",
			ProvinceCode: "ON",
			Safeguards:   []string{"customer_consent"},
		}

		reportDTO := scoredProfile(profile)

		assert.False(t, reportDTO.LegalCompliance.PIPEDAStatus.Compliant)
		assert.Len(t, reportDTO.LegalCompliance.PIPEDAStatus.Issues, 1)
	})

	t.Run("three safeguards count as Bill C-27 prepared", func(t *testing.T) {
		profile := dtos.BusinessProfile{
			BusinessName: "Prepared Inc",
			IndustryID:   "technology",
			ProvinceCode: "BC",
			Safeguards:   []string{"staff_training", "vendor_assessment", "access_controls"},
		}

		reportDTO := scoredProfile(profile)

		assert.True(t, reportDTO.LegalCompliance.BillC27Status.Compliant)

		profile.Safeguards = profile.Safeguards[:2]
		reportDTO = scoredProfile(profile)
		assert.False(t, reportDTO.LegalCompliance.BillC27Status.Compliant)
	})

	t.Run("quebec always gets the privacy officer issue", func(t *testing.T) {
		profile := dtos.BusinessProfile{
			BusinessName: "Boulangerie St-Louis",
			IndustryID:   "hospitality",
			ProvinceCode: "QC",
			Safeguards: []string{
				"canadian_hosted", "customer_consent", "access_controls", "ai_privacy_policy",
			},
		}

		reportDTO := scoredProfile(profile)

		assert.True(t, reportDTO.LegalCompliance.ProvincialStatus.Compliant)
		found := false
		for _, issue := range reportDTO.LegalCompliance.ProvincialStatus.Issues {
			if issue.Regulation == "Law 25" && strings.Contains(issue.Description, "privacy officer") {
				found = true
			}
		}
		assert.True(t, found, "expected the Law 25 privacy officer issue")
	})

	t.Run("provinces without their own statute report against PIPEDA", func(t *testing.T) {
		profile := dtos.BusinessProfile{
			BusinessName: "Yukon Outfitters",
			IndustryID:   "retail",
			ProvinceCode: "YT",
			Safeguards:   []string{"customer_consent", "ai_privacy_policy"},
		}

		reportDTO := scoredProfile(profile)

		assert.Equal(t, "PIPEDA", reportDTO.LegalCompliance.ProvincialStatus.Regulation)
	})
}

func TestDataRiskAssessment(t *testing.T) {
	t.Run("one flow and one exposure entry per data type", func(t *testing.T) {
		profile := dtos.BusinessProfile{
			BusinessName: "Flow Co",
			IndustryID:   "technology",
			ProvinceCode: "ON",
			AITools:      []string{"claude", "cohere"},
			DataTypes:    []string{"health_info", "customer_contact", "marketing_content"},
		}

		reportDTO := scoredProfile(profile)

		assert.Len(t, reportDTO.DataRiskAssessment.Flows, 3)
		assert.Len(t, reportDTO.DataRiskAssessment.ExposureAnalysis, 3)
		assert.Equal(t, dtos.RiskLevelCritical, reportDTO.DataRiskAssessment.Flows[0].RiskLevel)
		assert.Equal(t, 85, reportDTO.DataRiskAssessment.ExposureAnalysis[0].Score)
	})

	t.Run("us-hosted tools mark every flow cross border", func(t *testing.T) {
		profile := dtos.BusinessProfile{
			BusinessName: "Border Co",
			IndustryID:   "retail",
			ProvinceCode: "ON",
			AITools:      []string{"chatgpt", "cohere"},
			DataTypes:    []string{"customer_contact"},
		}

		reportDTO := scoredProfile(profile)

		assert.True(t, reportDTO.DataRiskAssessment.Flows[0].CrossBorder)
	})

	t.Run("canadian-only tools keep flows domestic", func(t *testing.T) {
		profile := dtos.BusinessProfile{
			BusinessName: "Domestic Co",
			IndustryID:   "retail",
			ProvinceCode: "ON",
			AITools:      []string{"cohere"},
			DataTypes:    []string{"customer_contact"},
		}

		reportDTO := scoredProfile(profile)

		assert.False(t, reportDTO.DataRiskAssessment.Flows[0].CrossBorder)
	})

	t.Run("no tools selected uses the sentinel", func(t *testing.T) {
		profile := dtos.BusinessProfile{
			BusinessName: "Tool Free",
			IndustryID:   "retail",
			ProvinceCode: "ON",
			DataTypes:    []string{"customer_contact"},
		}

		reportDTO := scoredProfile(profile)

		assert.Equal(t, []string{"No AI tools selected"}, reportDTO.DataRiskAssessment.Flows[0].Tools)
	})
}

func TestBusinessImpact(t *testing.T) {
	t.Run("quebec penalty ceiling", func(t *testing.T) {
		profile := dtos.BusinessProfile{
			BusinessName: "Montreal Metrics",
			IndustryID:   "technology",
			ProvinceCode: "QC",
		}

		reportDTO := scoredProfile(profile)

		assert.Equal(t, int64(100_000), reportDTO.BusinessImpact.FederalMaxPenalty)
		assert.Equal(t, int64(25_000_000), reportDTO.BusinessImpact.ProvincialMaxPenalty)
	})

	t.Run("reputational risk mirrors the overall level", func(t *testing.T) {
		profile := dtos.BusinessProfile{
			BusinessName:  "High Stakes",
			IndustryID:    "healthcare",
			ProvinceCode:  "ON",
			AITools:       []string{"chatgpt"},
			DataTypes:     []string{"health_info"},
			UsagePatterns: []dtos.UsagePattern{dtos.UsagePatternNoRestrictions},
		}

		reportDTO := scoredProfile(profile)

		assert.Equal(t, reportDTO.RiskLevel, reportDTO.BusinessImpact.ReputationalRisk)
	})
}

func TestCommunicationTemplates(t *testing.T) {
	t.Run("business name is interpolated", func(t *testing.T) {
		profile := dtos.BusinessProfile{
			BusinessName: "Tidal Design",
			IndustryID:   "marketing",
			ProvinceCode: "NS",
		}

		reportDTO := scoredProfile(profile)

		assert.Len(t, reportDTO.CommunicationTemplates, 3)
		for _, template := range reportDTO.CommunicationTemplates {
			assert.Contains(t, template.Body, "Tidal Design")
		}
	})

	t.Run("empty name falls back to a neutral phrase", func(t *testing.T) {
		profile := dtos.BusinessProfile{
			IndustryID:   "marketing",
			ProvinceCode: "NS",
		}

		reportDTO := scoredProfile(profile)

		for _, template := range reportDTO.CommunicationTemplates {
			assert.Contains(t, template.Body, "our business")
		}
	})
}

func TestActionPlan(t *testing.T) {
	t.Run("ordered by timeline then priority", func(t *testing.T) {
		reportDTO := scoredProfile(dtos.BusinessProfile{
			BusinessName: "Plan Co",
			IndustryID:   "retail",
			ProvinceCode: "ON",
		})

		items := reportDTO.ActionPlan
		assert.Len(t, items, 7)

		for i := 1; i < len(items); i++ {
			assert.LessOrEqual(t, items[i-1].TimelineDays, items[i].TimelineDays)
			if items[i-1].TimelineDays == items[i].TimelineDays {
				assert.LessOrEqual(t, priorityRank[items[i-1].Priority], priorityRank[items[i].Priority])
			}
		}
	})

	t.Run("all items start incomplete", func(t *testing.T) {
		reportDTO := scoredProfile(dtos.BusinessProfile{
			BusinessName: "Plan Co",
			IndustryID:   "retail",
			ProvinceCode: "ON",
		})

		for _, item := range reportDTO.ActionPlan {
			assert.False(t, item.Completed)
		}
	})
}
