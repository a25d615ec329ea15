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
	"testing"

	"github.com/google/uuid"
	"github.com/maplerisk/maplerisk/dtos"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func testProfile() dtos.BusinessProfile {
	return dtos.BusinessProfile{
		BusinessName:  "Harbour Dental",
		IndustryID:    "healthcare",
		ProvinceCode:  "NS",
		AITools:       []string{"chatgpt"},
		DataTypes:     []string{"health_info"},
		UsagePatterns: []dtos.UsagePattern{dtos.UsagePatternAllEmployees},
		Safeguards:    []string{"access_controls"},
	}
}

func TestSubmitProfile(t *testing.T) {
	t.Run("persists the assessment and its report together", func(t *testing.T) {
		assessmentRepository := newFakeAssessmentRepository()
		reportRepository := newFakeReportRepository()
		service := NewAssessmentService(assessmentRepository, reportRepository)

		assessment, reportDTO, err := service.SubmitProfile(testProfile())

		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, assessment.ID)
		assert.NotEqual(t, uuid.Nil, reportDTO.ID)
		assert.Equal(t, assessment.ID, reportDTO.AssessmentID)
		assert.False(t, reportDTO.CreatedAt.IsZero())

		assert.Len(t, assessmentRepository.assessments, 1)
		assert.Len(t, reportRepository.reports, 1)
	})

	t.Run("stored report survives a round trip", func(t *testing.T) {
		assessmentRepository := newFakeAssessmentRepository()
		reportRepository := newFakeReportRepository()
		service := NewAssessmentService(assessmentRepository, reportRepository)

		assessment, submitted, err := service.SubmitProfile(testProfile())
		assert.NoError(t, err)

		loaded, err := service.GetReportByAssessmentID(assessment.ID)
		assert.NoError(t, err)
		assert.Equal(t, submitted.RiskScore, loaded.RiskScore)
		assert.Equal(t, submitted.RiskLevel, loaded.RiskLevel)
		assert.Equal(t, submitted.ActionPlan, loaded.ActionPlan)
	})

	t.Run("a failing transaction persists nothing", func(t *testing.T) {
		assessmentRepository := newFakeAssessmentRepository()
		assessmentRepository.createErr = errors.New("connection reset")
		reportRepository := newFakeReportRepository()
		service := NewAssessmentService(assessmentRepository, reportRepository)

		_, _, err := service.SubmitProfile(testProfile())

		assert.Error(t, err)
		assert.Empty(t, reportRepository.reports)
	})
}

func TestGetReportByAssessmentID(t *testing.T) {
	t.Run("unknown assessment yields record not found", func(t *testing.T) {
		service := NewAssessmentService(newFakeAssessmentRepository(), newFakeReportRepository())

		_, err := service.GetReportByAssessmentID(uuid.New())

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestToggleActionItem(t *testing.T) {
	t.Run("flips only the targeted item", func(t *testing.T) {
		service := NewAssessmentService(newFakeAssessmentRepository(), newFakeReportRepository())
		assessment, _, err := service.SubmitProfile(testProfile())
		assert.NoError(t, err)

		updated, err := service.ToggleActionItem(assessment.ID, "consent_process", true)
		assert.NoError(t, err)

		for _, item := range updated.ActionPlan {
			if item.ID == "consent_process" {
				assert.True(t, item.Completed)
			} else {
				assert.False(t, item.Completed)
			}
		}
	})

	t.Run("toggling persists across reads", func(t *testing.T) {
		service := NewAssessmentService(newFakeAssessmentRepository(), newFakeReportRepository())
		assessment, _, err := service.SubmitProfile(testProfile())
		assert.NoError(t, err)

		_, err = service.ToggleActionItem(assessment.ID, "consent_process", true)
		assert.NoError(t, err)

		loaded, err := service.GetReportByAssessmentID(assessment.ID)
		assert.NoError(t, err)
		for _, item := range loaded.ActionPlan {
			if item.ID == "consent_process" {
				assert.True(t, item.Completed)
			}
		}
	})

	t.Run("unknown item id fails", func(t *testing.T) {
		service := NewAssessmentService(newFakeAssessmentRepository(), newFakeReportRepository())
		assessment, _, err := service.SubmitProfile(testProfile())
		assert.NoError(t, err)

		_, err = service.ToggleActionItem(assessment.ID, "buy_lottery_tickets", true)
		assert.ErrorIs(t, err, ErrActionItemNotFound)
	})

	t.Run("score is untouched by toggling", func(t *testing.T) {
		service := NewAssessmentService(newFakeAssessmentRepository(), newFakeReportRepository())
		assessment, submitted, err := service.SubmitProfile(testProfile())
		assert.NoError(t, err)

		updated, err := service.ToggleActionItem(assessment.ID, "inventory_ai_tools", true)
		assert.NoError(t, err)
		assert.Equal(t, submitted.RiskScore, updated.RiskScore)
		assert.Equal(t, submitted.RiskLevel, updated.RiskLevel)
	})
}
