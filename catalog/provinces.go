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

package catalog

// Provinces covers all 13 Canadian jurisdictions. PIPEDA is the federal
// baseline, HasProvincialLaw marks jurisdictions with a substantially similar
// private-sector statute of their own.
var Provinces = []Province{
	{Code: "AB", Name: "Alberta", RiskMultiplier: 1.1, PrivacyStatute: "Personal Information Protection Act (Alberta)", HasProvincialLaw: true},
	{Code: "BC", Name: "British Columbia", RiskMultiplier: 1.1, PrivacyStatute: "Personal Information Protection Act (BC)", HasProvincialLaw: true},
	{Code: "MB", Name: "Manitoba", RiskMultiplier: 1.0, PrivacyStatute: "PIPEDA", HasProvincialLaw: false},
	{Code: "NB", Name: "New Brunswick", RiskMultiplier: 1.0, PrivacyStatute: "PIPEDA", HasProvincialLaw: false},
	{Code: "NL", Name: "Newfoundland and Labrador", RiskMultiplier: 1.0, PrivacyStatute: "PIPEDA", HasProvincialLaw: false},
	{Code: "NS", Name: "Nova Scotia", RiskMultiplier: 1.0, PrivacyStatute: "PIPEDA", HasProvincialLaw: false},
	{Code: "NT", Name: "Northwest Territories", RiskMultiplier: 1.0, PrivacyStatute: "PIPEDA", HasProvincialLaw: false},
	{Code: "NU", Name: "Nunavut", RiskMultiplier: 1.0, PrivacyStatute: "PIPEDA", HasProvincialLaw: false},
	{Code: "ON", Name: "Ontario", RiskMultiplier: 1.15, PrivacyStatute: "PHIPA (health sector), PIPEDA otherwise", HasProvincialLaw: true},
	{Code: "PE", Name: "Prince Edward Island", RiskMultiplier: 1.0, PrivacyStatute: "PIPEDA", HasProvincialLaw: false},
	{Code: "QC", Name: "Quebec", RiskMultiplier: 1.25, PrivacyStatute: "Law 25 (Act respecting the protection of personal information in the private sector)", HasProvincialLaw: true},
	{Code: "SK", Name: "Saskatchewan", RiskMultiplier: 1.0, PrivacyStatute: "PIPEDA", HasProvincialLaw: false},
	{Code: "YT", Name: "Yukon", RiskMultiplier: 1.0, PrivacyStatute: "PIPEDA", HasProvincialLaw: false},
}

const FederalMaxPenalty int64 = 100_000

// ProvincialMaxPenalty returns the maximum administrative penalty of the
// province-specific statute, falling back to the federal baseline amount.
func ProvincialMaxPenalty(code string) int64 {
	switch code {
	case "QC":
		return 25_000_000
	case "ON":
		return 1_000_000
	default:
		return 100_000
	}
}

// StatuteCitation is the short legal citation used in report narratives.
func StatuteCitation(code string) string {
	switch code {
	case "QC":
		return "Law 25"
	case "ON":
		return "PHIPA"
	case "BC", "AB":
		return "provincial PIPA legislation"
	default:
		return "PIPEDA"
	}
}
