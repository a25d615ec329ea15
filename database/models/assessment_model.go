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

package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/maplerisk/maplerisk/dtos"
	"gorm.io/datatypes"
)

// Assessment is the stored business profile. Set-valued fields are kept as
// JSON columns, they are only ever read back as a whole.
type Assessment struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	BusinessName       string         `json:"businessName" gorm:"type:text"`
	IndustryID         string         `json:"industryId"`
	ProvinceCode       string         `json:"provinceCode"`
	EmployeeCount      string         `json:"employeeCount"`
	Website            string         `json:"website" gorm:"type:text"`
	Email              string         `json:"email"`
	AITools            datatypes.JSON `json:"aiTools"`
	DataTypes          datatypes.JSON `json:"dataTypes"`
	UsagePatterns      datatypes.JSON `json:"usagePatterns"`
	HasWrittenPolicies bool           `json:"hasWrittenPolicies"`
	Safeguards         datatypes.JSON `json:"safeguards"`
	AssessmentPath     string         `json:"assessmentPath"`
}

func (a Assessment) TableName() string {
	return "assessments"
}

func AssessmentFromProfile(profile dtos.BusinessProfile) (Assessment, error) {
	aiTools, err := json.Marshal(profile.AITools)
	if err != nil {
		return Assessment{}, err
	}
	dataTypes, err := json.Marshal(profile.DataTypes)
	if err != nil {
		return Assessment{}, err
	}
	usagePatterns, err := json.Marshal(profile.UsagePatterns)
	if err != nil {
		return Assessment{}, err
	}
	safeguards, err := json.Marshal(profile.Safeguards)
	if err != nil {
		return Assessment{}, err
	}

	return Assessment{
		BusinessName:       profile.BusinessName,
		IndustryID:         profile.IndustryID,
		ProvinceCode:       profile.ProvinceCode,
		EmployeeCount:      string(profile.EmployeeCount),
		Website:            profile.Website,
		Email:              profile.Email,
		AITools:            aiTools,
		DataTypes:          dataTypes,
		UsagePatterns:      usagePatterns,
		HasWrittenPolicies: profile.HasWrittenPolicies,
		Safeguards:         safeguards,
		AssessmentPath:     string(profile.AssessmentPath),
	}, nil
}

func (a Assessment) ToProfile() (dtos.BusinessProfile, error) {
	profile := dtos.BusinessProfile{
		BusinessName:       a.BusinessName,
		IndustryID:         a.IndustryID,
		ProvinceCode:       a.ProvinceCode,
		EmployeeCount:      dtos.EmployeeCount(a.EmployeeCount),
		Website:            a.Website,
		Email:              a.Email,
		HasWrittenPolicies: a.HasWrittenPolicies,
		AssessmentPath:     dtos.AssessmentPath(a.AssessmentPath),
	}
	if len(a.AITools) > 0 {
		if err := json.Unmarshal(a.AITools, &profile.AITools); err != nil {
			return profile, err
		}
	}
	if len(a.DataTypes) > 0 {
		if err := json.Unmarshal(a.DataTypes, &profile.DataTypes); err != nil {
			return profile, err
		}
	}
	if len(a.UsagePatterns) > 0 {
		if err := json.Unmarshal(a.UsagePatterns, &profile.UsagePatterns); err != nil {
			return profile, err
		}
	}
	if len(a.Safeguards) > 0 {
		if err := json.Unmarshal(a.Safeguards, &profile.Safeguards); err != nil {
			return profile, err
		}
	}
	return profile, nil
}
