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

// WizardSession is the single session-scoped slot holding the accumulated
// partial profile between wizard steps. Deleted on submit or explicit reset.
type WizardSession struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Step    string         `json:"step"`
	Profile datatypes.JSON `json:"profile"`
}

func (w WizardSession) TableName() string {
	return "wizard_sessions"
}

func (w WizardSession) PartialProfile() (dtos.PartialProfile, error) {
	var profile dtos.PartialProfile
	if len(w.Profile) == 0 {
		return profile, nil
	}
	err := json.Unmarshal(w.Profile, &profile)
	return profile, err
}

func (w *WizardSession) SetPartialProfile(profile dtos.PartialProfile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	w.Profile = payload
	return nil
}
