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

// Report rows are written once on derivation. The only later write is the
// client-local completed flag on action items, which does not re-score.
type Report struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"createdAt"`

	AssessmentID uuid.UUID `json:"assessmentId" gorm:"type:uuid;index"`
	RiskScore    int       `json:"riskScore"`
	RiskLevel    string    `json:"riskLevel"`

	ExecutiveSummary       datatypes.JSON `json:"executiveSummary"`
	LegalCompliance        datatypes.JSON `json:"legalCompliance"`
	DataRiskAssessment     datatypes.JSON `json:"dataRiskAssessment"`
	BusinessImpact         datatypes.JSON `json:"businessImpact"`
	CommunicationTemplates datatypes.JSON `json:"communicationTemplates"`
	ActionPlan             datatypes.JSON `json:"actionPlan"`
}

func (r Report) TableName() string {
	return "reports"
}

func ReportFromDTO(dto dtos.Report) (Report, error) {
	report := Report{
		ID:           dto.ID,
		CreatedAt:    dto.CreatedAt,
		AssessmentID: dto.AssessmentID,
		RiskScore:    dto.RiskScore,
		RiskLevel:    string(dto.RiskLevel),
	}

	var err error
	if report.ExecutiveSummary, err = json.Marshal(dto.ExecutiveSummary); err != nil {
		return report, err
	}
	if report.LegalCompliance, err = json.Marshal(dto.LegalCompliance); err != nil {
		return report, err
	}
	if report.DataRiskAssessment, err = json.Marshal(dto.DataRiskAssessment); err != nil {
		return report, err
	}
	if report.BusinessImpact, err = json.Marshal(dto.BusinessImpact); err != nil {
		return report, err
	}
	if report.CommunicationTemplates, err = json.Marshal(dto.CommunicationTemplates); err != nil {
		return report, err
	}
	if report.ActionPlan, err = json.Marshal(dto.ActionPlan); err != nil {
		return report, err
	}
	return report, nil
}

func (r Report) ToDTO() (dtos.Report, error) {
	dto := dtos.Report{
		ID:           r.ID,
		CreatedAt:    r.CreatedAt,
		AssessmentID: r.AssessmentID,
		RiskScore:    r.RiskScore,
		RiskLevel:    dtos.RiskLevel(r.RiskLevel),
	}

	if err := json.Unmarshal(r.ExecutiveSummary, &dto.ExecutiveSummary); err != nil {
		return dto, err
	}
	if err := json.Unmarshal(r.LegalCompliance, &dto.LegalCompliance); err != nil {
		return dto, err
	}
	if err := json.Unmarshal(r.DataRiskAssessment, &dto.DataRiskAssessment); err != nil {
		return dto, err
	}
	if err := json.Unmarshal(r.BusinessImpact, &dto.BusinessImpact); err != nil {
		return dto, err
	}
	if err := json.Unmarshal(r.CommunicationTemplates, &dto.CommunicationTemplates); err != nil {
		return dto, err
	}
	if err := json.Unmarshal(r.ActionPlan, &dto.ActionPlan); err != nil {
		return dto, err
	}
	return dto, nil
}
