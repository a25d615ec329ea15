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
)

// businessImpact combines the penalty lookups with generic exposure lists.
// The insurance and operational lists are deliberately profile-invariant
// boilerplate.
func businessImpact(profile dtos.BusinessProfile, level dtos.RiskLevel) dtos.BusinessImpact {
	statute := "PIPEDA"
	if province, ok := catalog.ProvinceByCode(profile.ProvinceCode); ok && province.HasProvincialLaw {
		statute = province.PrivacyStatute
	}

	return dtos.BusinessImpact{
		FederalMaxPenalty:    catalog.FederalMaxPenalty,
		ProvincialMaxPenalty: catalog.ProvincialMaxPenalty(profile.ProvinceCode),
		ProvincialStatute:    statute,
		ReputationalRisk:     level,
		InsuranceGaps: []string{
			"Standard commercial general liability policies exclude data incidents",
			"Cyber policies often exclude incidents caused by unsanctioned software, which can include unapproved AI tools",
			"Errors-and-omissions coverage may not extend to AI-generated work product",
		},
		OperationalRisks: []string{
			"Regulator inquiries consume owner and staff time regardless of outcome",
			"A vendor-side breach can force disclosure to every affected customer",
			"Contracts with larger clients increasingly require AI-use attestations",
		},
	}
}
