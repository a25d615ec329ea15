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

package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/maplerisk/maplerisk/database/models"
	"github.com/maplerisk/maplerisk/dtos"
	"github.com/maplerisk/maplerisk/monitoring"
	"github.com/maplerisk/maplerisk/report"
	"github.com/maplerisk/maplerisk/risk"
	"github.com/maplerisk/maplerisk/shared"
	"gorm.io/gorm"
)

var ErrActionItemNotFound = errors.New("action item not found")

type AssessmentService struct {
	assessmentRepository shared.AssessmentRepository
	reportRepository     shared.ReportRepository
}

func NewAssessmentService(assessmentRepository shared.AssessmentRepository, reportRepository shared.ReportRepository) *AssessmentService {
	return &AssessmentService{
		assessmentRepository: assessmentRepository,
		reportRepository:     reportRepository,
	}
}

// SubmitProfile scores the profile, derives the report and persists both in a
// single transaction. The profile is consumed exactly once, the stored report
// is never re-derived.
func (s *AssessmentService) SubmitProfile(profile dtos.BusinessProfile) (models.Assessment, dtos.Report, error) {
	profile.Normalize()

	score, _ := risk.ComputeRiskScore(profile)
	level := risk.LevelForScore(score)
	reportDTO := report.Derive(profile, score, level)
	reportDTO.ID = uuid.New()
	reportDTO.CreatedAt = time.Now()

	assessment, err := models.AssessmentFromProfile(profile)
	if err != nil {
		return models.Assessment{}, dtos.Report{}, err
	}
	assessment.ID = uuid.New()
	reportDTO.AssessmentID = assessment.ID

	reportModel, err := models.ReportFromDTO(reportDTO)
	if err != nil {
		return models.Assessment{}, dtos.Report{}, err
	}

	err = s.assessmentRepository.Transaction(func(tx *gorm.DB) error {
		if err := s.assessmentRepository.Create(tx, &assessment); err != nil {
			return err
		}
		return s.reportRepository.Create(tx, &reportModel)
	})
	if err != nil {
		return models.Assessment{}, dtos.Report{}, err
	}

	monitoring.AssessmentsCreated.WithLabelValues(string(profile.AssessmentPath)).Inc()
	monitoring.ReportsDerived.Inc()
	monitoring.RiskScores.Observe(float64(score))

	return assessment, reportDTO, nil
}

func (s *AssessmentService) GetAssessment(id uuid.UUID) (models.Assessment, error) {
	return s.assessmentRepository.Read(id)
}

func (s *AssessmentService) GetReportByAssessmentID(assessmentID uuid.UUID) (dtos.Report, error) {
	reportModel, err := s.reportRepository.FindByAssessmentID(assessmentID)
	if err != nil {
		return dtos.Report{}, err
	}
	return reportModel.ToDTO()
}

// ToggleActionItem flips the client-local completed flag on a single action
// item. The score and every other section stay untouched.
func (s *AssessmentService) ToggleActionItem(assessmentID uuid.UUID, itemID string, completed bool) (dtos.Report, error) {
	reportModel, err := s.reportRepository.FindByAssessmentID(assessmentID)
	if err != nil {
		return dtos.Report{}, err
	}
	reportDTO, err := reportModel.ToDTO()
	if err != nil {
		return dtos.Report{}, err
	}

	found := false
	for i := range reportDTO.ActionPlan {
		if reportDTO.ActionPlan[i].ID == itemID {
			reportDTO.ActionPlan[i].Completed = completed
			found = true
			break
		}
	}
	if !found {
		return dtos.Report{}, fmt.Errorf("%w: %s", ErrActionItemNotFound, itemID)
	}

	updated, err := models.ReportFromDTO(reportDTO)
	if err != nil {
		return dtos.Report{}, err
	}
	if err := s.reportRepository.Save(nil, &updated); err != nil {
		return dtos.Report{}, err
	}
	return reportDTO, nil
}
