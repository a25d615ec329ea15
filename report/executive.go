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
	"fmt"

	"github.com/maplerisk/maplerisk/catalog"
	"github.com/maplerisk/maplerisk/dtos"
	"github.com/maplerisk/maplerisk/utils"
)

const maxTopRisks = 4

func executiveSummary(profile dtos.BusinessProfile, score int, level dtos.RiskLevel, breakdown dtos.RiskBreakdown) dtos.ExecutiveSummary {
	return dtos.ExecutiveSummary{
		RiskScore:       score,
		RiskLevel:       level,
		Breakdown:       breakdown,
		TopRisks:        topRisks(profile),
		QuickWins:       quickWins(),
		IndustryContext: industryContext(profile.IndustryID),
		ProvinceContext: provinceContext(profile.ProvinceCode),
	}
}

// topRisks collects narratives by simple conditional rules and truncates to a
// fixed size. Rule order doubles as severity order.
func topRisks(profile dtos.BusinessProfile) []string {
	risks := []string{}

	if utils.Contains(profile.AITools, "chatgpt") {
		risks = append(risks, "ChatGPT's consumer tier may use submitted conversations for model training - business data entered there can leave your control permanently.")
	}
	if utils.Any(profile.AITools, catalog.CrossBorderTool) {
		risks = append(risks, "Business data flows through AI vendors hosted outside Canada, which triggers cross-border transfer obligations under Canadian privacy law.")
	}
	if utils.Contains(profile.DataTypes, "health_info") {
		risks = append(risks, "Health information is among the data processed with AI tools - the most sensitive category under every Canadian privacy regime.")
	}
	if !profile.HasWrittenPolicies {
		risks = append(risks, "No written AI usage policies exist, so employees decide case by case what is safe to share with AI tools.")
	}
	if !utils.Contains(profile.Safeguards, catalog.SafeguardAIPrivacyPolicy) {
		risks = append(risks, "Your privacy policy does not disclose AI processing, leaving customers uninformed about how their data is handled.")
	}
	if !utils.Contains(profile.Safeguards, catalog.SafeguardCustomerConsent) {
		risks = append(risks, "There is no documented consent process before customer data reaches AI tools.")
	}

	if len(risks) > maxTopRisks {
		risks = risks[:maxTopRisks]
	}
	return risks
}

func quickWins() []string {
	return []string{
		"Add an AI-use section to your privacy policy naming the tools you rely on.",
		"Switch high-risk tools to their enterprise or data-protected tier where one exists.",
		"Brief staff on which data categories must never be pasted into AI tools.",
	}
}

func industryContext(industryID string) string {
	industry, ok := catalog.IndustryByID(industryID)
	if !ok {
		// unresolved industries still get a usable narrative
		return "Businesses in your sector increasingly adopt AI tools for day-to-day work. Each tool that touches customer or employee data adds compliance exposure that should be inventoried and disclosed."
	}
	return fmt.Sprintf("%s businesses typically process %s through everyday tooling. With AI assistants in that workflow, every one of those data categories can end up on third-party infrastructure, which is why your sector carries an elevated baseline exposure.",
		industry.Name, humanJoin(utils.Map(industry.TypicalDataTypes, catalog.DataTypeLabel)))
}

func provinceContext(provinceCode string) string {
	citation := catalog.StatuteCitation(provinceCode)
	province, ok := catalog.ProvinceByCode(provinceCode)
	if !ok {
		return fmt.Sprintf("Your business falls under the federal baseline (%s) for commercial handling of personal information, including data submitted to AI tools.", citation)
	}
	if province.HasProvincialLaw {
		return fmt.Sprintf("Operating in %s puts you under %s in addition to the federal PIPEDA baseline. Provincial regulators expect AI data flows to be documented and disclosed.", province.Name, citation)
	}
	return fmt.Sprintf("Operating in %s, your AI data handling is governed by the federal baseline (%s). Federal guidance treats AI vendors as third-party processors requiring appropriate contractual protection.", province.Name, citation)
}

func humanJoin(items []string) string {
	switch len(items) {
	case 0:
		return "personal information"
	case 1:
		return items[0]
	default:
		joined := items[0]
		for _, item := range items[1 : len(items)-1] {
			joined += ", " + item
		}
		return joined + " and " + items[len(items)-1]
	}
}
