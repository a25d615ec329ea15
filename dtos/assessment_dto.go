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

package dtos

import "github.com/maplerisk/maplerisk/utils"

type EmployeeCount string

const (
	EmployeeCountSolo   EmployeeCount = "SOLO"
	EmployeeCountMicro  EmployeeCount = "MICRO"
	EmployeeCountSmall  EmployeeCount = "SMALL"
	EmployeeCountMedium EmployeeCount = "MEDIUM"
)

type UsagePattern string

const (
	UsagePatternOwnerManager        UsagePattern = "OWNER_MANAGER"
	UsagePatternSpecificDepartments UsagePattern = "SPECIFIC_DEPARTMENTS"
	UsagePatternAllEmployees        UsagePattern = "ALL_EMPLOYEES"
	UsagePatternContractors         UsagePattern = "CONTRACTORS"
	UsagePatternNoRestrictions      UsagePattern = "NO_RESTRICTIONS"
)

type AssessmentPath string

const (
	AssessmentPathGuided  AssessmentPath = "GUIDED"
	AssessmentPathExpress AssessmentPath = "EXPRESS"
)

// BusinessProfile is the snake_case wire projection of an assessment input.
// Catalog identifiers (industry, tools, data types, safeguards) are not
// validated against the catalogs on purpose: catalogs evolve independently of
// submitted profiles, unknown identifiers simply contribute zero risk.
type BusinessProfile struct {
	BusinessName       string         `json:"business_name" validate:"required"`
	IndustryID         string         `json:"industry_id" validate:"required"`
	ProvinceCode       string         `json:"province_code" validate:"required,oneof=AB BC MB NB NL NS NT NU ON PE QC SK YT"`
	EmployeeCount      EmployeeCount  `json:"employee_count" validate:"omitempty,oneof=SOLO MICRO SMALL MEDIUM"`
	Website            string         `json:"website" validate:"omitempty,url"`
	AITools            []string       `json:"ai_tools"`
	DataTypes          []string       `json:"data_types"`
	UsagePatterns      []UsagePattern `json:"usage_patterns" validate:"omitempty,dive,oneof=OWNER_MANAGER SPECIFIC_DEPARTMENTS ALL_EMPLOYEES CONTRACTORS NO_RESTRICTIONS"`
	HasWrittenPolicies bool           `json:"has_written_policies"`
	Safeguards         []string       `json:"safeguards"`
	Email              string         `json:"email" validate:"omitempty,email"`
	AssessmentPath     AssessmentPath `json:"assessment_path" validate:"omitempty,oneof=GUIDED EXPRESS"`
}

// Normalize collapses duplicate set entries. Order of first occurrence wins,
// scoring itself is order independent.
func (p *BusinessProfile) Normalize() {
	p.AITools = utils.Uniq(p.AITools)
	p.DataTypes = utils.Uniq(p.DataTypes)
	p.UsagePatterns = utils.Uniq(p.UsagePatterns)
	p.Safeguards = utils.Uniq(p.Safeguards)
}

// PartialProfile is the optional-field projection accumulated by the wizard.
// nil means "not answered yet", which is distinct from an empty answer.
type PartialProfile struct {
	BusinessName       *string         `json:"business_name,omitempty"`
	IndustryID         *string         `json:"industry_id,omitempty"`
	ProvinceCode       *string         `json:"province_code,omitempty"`
	EmployeeCount      *EmployeeCount  `json:"employee_count,omitempty"`
	Website            *string         `json:"website,omitempty"`
	AITools            []string        `json:"ai_tools,omitempty"`
	DataTypes          []string        `json:"data_types,omitempty"`
	UsagePatterns      []UsagePattern  `json:"usage_patterns,omitempty"`
	HasWrittenPolicies *bool           `json:"has_written_policies,omitempty"`
	Safeguards         []string        `json:"safeguards,omitempty"`
	Email              *string         `json:"email,omitempty"`
	AssessmentPath     *AssessmentPath `json:"assessment_path,omitempty"`
}

// Merge overlays other onto p. Answered fields in other win, including
// explicitly empty set answers.
func (p PartialProfile) Merge(other PartialProfile) PartialProfile {
	if other.BusinessName != nil {
		p.BusinessName = other.BusinessName
	}
	if other.IndustryID != nil {
		p.IndustryID = other.IndustryID
	}
	if other.ProvinceCode != nil {
		p.ProvinceCode = other.ProvinceCode
	}
	if other.EmployeeCount != nil {
		p.EmployeeCount = other.EmployeeCount
	}
	if other.Website != nil {
		p.Website = other.Website
	}
	if other.AITools != nil {
		p.AITools = other.AITools
	}
	if other.DataTypes != nil {
		p.DataTypes = other.DataTypes
	}
	if other.UsagePatterns != nil {
		p.UsagePatterns = other.UsagePatterns
	}
	if other.HasWrittenPolicies != nil {
		p.HasWrittenPolicies = other.HasWrittenPolicies
	}
	if other.Safeguards != nil {
		p.Safeguards = other.Safeguards
	}
	if other.Email != nil {
		p.Email = other.Email
	}
	if other.AssessmentPath != nil {
		p.AssessmentPath = other.AssessmentPath
	}
	return p
}

// MissingFields returns the profile fields that still need an answer before
// the partial profile can be assembled into a complete one.
func (p PartialProfile) MissingFields() []string {
	missing := []string{}
	if utils.SafeDereference(p.BusinessName) == "" {
		missing = append(missing, "business_name")
	}
	if utils.SafeDereference(p.IndustryID) == "" {
		missing = append(missing, "industry_id")
	}
	if utils.SafeDereference(p.ProvinceCode) == "" {
		missing = append(missing, "province_code")
	}
	if p.HasWrittenPolicies == nil {
		missing = append(missing, "has_written_policies")
	}
	return missing
}

// Assemble builds the complete profile. It does not validate catalog
// identifiers, callers run shared.V on the result.
func (p PartialProfile) Assemble() BusinessProfile {
	profile := BusinessProfile{
		BusinessName:       utils.SafeDereference(p.BusinessName),
		IndustryID:         utils.SafeDereference(p.IndustryID),
		ProvinceCode:       utils.SafeDereference(p.ProvinceCode),
		EmployeeCount:      EmployeeCount(utils.OrDefault(p.EmployeeCount, "")),
		Website:            utils.SafeDereference(p.Website),
		AITools:            p.AITools,
		DataTypes:          p.DataTypes,
		UsagePatterns:      p.UsagePatterns,
		HasWrittenPolicies: utils.OrDefault(p.HasWrittenPolicies, false),
		Safeguards:         p.Safeguards,
		Email:              utils.SafeDereference(p.Email),
		AssessmentPath:     AssessmentPath(utils.OrDefault(p.AssessmentPath, AssessmentPathGuided)),
	}
	profile.Normalize()
	return profile
}
