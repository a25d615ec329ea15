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
	"github.com/maplerisk/maplerisk/catalog"
	"github.com/maplerisk/maplerisk/dtos"
	"github.com/maplerisk/maplerisk/utils"
)

// ToDraftProfile maps scan signals onto the partial profile shape the wizard
// consumes. Undetected fields stay nil so the user is asked to complete them,
// detected privacy-policy and consent mentions map to their safeguard
// counterparts.
func ToDraftProfile(result dtos.ScanResult) dtos.PartialProfile {
	profile := dtos.PartialProfile{
		AssessmentPath: utils.Ptr(dtos.AssessmentPathExpress),
	}

	if result.BusinessName != "" {
		profile.BusinessName = utils.Ptr(result.BusinessName)
	}
	if result.IndustryID != "" {
		profile.IndustryID = utils.Ptr(result.IndustryID)
	}
	if result.ProvinceCode != "" {
		profile.ProvinceCode = utils.Ptr(result.ProvinceCode)
	}
	if result.URL != "" {
		profile.Website = utils.Ptr(result.URL)
	}
	if len(result.DetectedAITools) > 0 {
		profile.AITools = utils.Uniq(result.DetectedAITools)
	}
	if len(result.DetectedDataTypes) > 0 {
		profile.DataTypes = utils.Uniq(result.DetectedDataTypes)
	}

	safeguards := []string{}
	if result.MentionsPrivacyPolicy {
		safeguards = append(safeguards, catalog.SafeguardAIPrivacyPolicy)
	}
	if result.MentionsConsent {
		safeguards = append(safeguards, catalog.SafeguardCustomerConsent)
	}
	if len(safeguards) > 0 {
		profile.Safeguards = safeguards
	}

	// a PIPEDA mention is the strongest signal the business has written
	// policies at all
	if result.MentionsPIPEDA {
		profile.HasWrittenPolicies = utils.Ptr(true)
	}

	return profile
}
