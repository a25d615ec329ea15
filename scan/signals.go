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

package scan

import (
	"sort"
	"strings"
)

// keyword tables keyed by catalog identifier. Matching is substring based on
// the lowercased page corpus, precision is intentionally traded for recall
// since every detection is surfaced for manual confirmation.

var toolKeywords = map[string][]string{
	"chatgpt":           {"chatgpt", "openai"},
	"claude":            {"claude.ai", "anthropic"},
	"gemini":            {"gemini.google", "google gemini"},
	"microsoft_copilot": {"microsoft copilot", "copilot.microsoft"},
	"grammarly":         {"grammarly"},
	"jasper":            {"jasper.ai"},
	"midjourney":        {"midjourney"},
	"otter_ai":          {"otter.ai"},
	"canva_magic":       {"canva"},
	"cohere":            {"cohere"},
}

var dataTypeKeywords = map[string][]string{
	"health_info":      {"patient", "clinic", "treatment", "appointment booking"},
	"financial_info":   {"invoice", "payment", "banking", "payroll services"},
	"legal_documents":  {"law firm", "legal services", "notary"},
	"employee_records": {"careers", "join our team", "we are hiring"},
	"customer_contact": {"contact us", "newsletter", "book a consultation"},
}

var industryKeywords = map[string][]string{
	"healthcare":  {"clinic", "dental", "physiotherapy", "patient"},
	"legal":       {"law firm", "notary", "legal services"},
	"accounting":  {"accounting", "bookkeeping", "tax preparation", "cpa"},
	"finance":     {"mortgage", "insurance broker", "financial advisor"},
	"real_estate": {"real estate", "realtor", "property management"},
	"hospitality": {"restaurant", "catering", "menu"},
	"marketing":   {"marketing agency", "branding", "creative studio"},
	"retail":      {"shop online", "add to cart", "free shipping"},
}

var provinceKeywords = map[string][]string{
	"QC": {"quebec", "québec", "montreal", "montréal"},
	"ON": {"ontario", "toronto", "ottawa"},
	"BC": {"british columbia", "vancouver", "victoria, bc"},
	"AB": {"alberta", "calgary", "edmonton"},
	"MB": {"manitoba", "winnipeg"},
	"SK": {"saskatchewan", "saskatoon", "regina"},
	"NS": {"nova scotia", "halifax"},
	"NB": {"new brunswick", "moncton", "fredericton"},
	"NL": {"newfoundland", "st. john's"},
	"PE": {"prince edward island", "charlottetown"},
	"YT": {"yukon", "whitehorse"},
	"NT": {"northwest territories", "yellowknife"},
	"NU": {"nunavut", "iqaluit"},
}

func detectTools(corpus string) []string {
	return matchKeywords(corpus, toolKeywords)
}

func detectDataTypes(corpus string) []string {
	return matchKeywords(corpus, dataTypeKeywords)
}

// detectIndustry returns the first industry with a hit, ambiguous pages stay
// undetected and are completed manually.
func detectIndustry(corpus string) string {
	matches := matchKeywords(corpus, industryKeywords)
	if len(matches) == 1 {
		return matches[0]
	}
	return ""
}

func detectProvince(corpus string) string {
	matches := matchKeywords(corpus, provinceKeywords)
	if len(matches) == 1 {
		return matches[0]
	}
	return ""
}

func matchKeywords(corpus string, table map[string][]string) []string {
	// deterministic output order for stable responses and tests
	matched := []string{}
	for _, id := range sortedKeys(table) {
		for _, keyword := range table[id] {
			if strings.Contains(corpus, keyword) {
				matched = append(matched, id)
				break
			}
		}
	}
	return matched
}

func sortedKeys(table map[string][]string) []string {
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
