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
	"context"
	"errors"
	"testing"

	"github.com/maplerisk/maplerisk/dtos"
	"github.com/maplerisk/maplerisk/utils"
	"github.com/stretchr/testify/assert"
)

func newTestScanService(scanResult dtos.ScanResult) (*ScanService, *fakeWizardSessionRepository) {
	sessionRepository := newFakeWizardSessionRepository()
	submitter := NewAssessmentService(newFakeAssessmentRepository(), newFakeReportRepository())
	wizardService := NewWizardService(sessionRepository, submitter)
	scanner := &fakeScanner{result: scanResult}
	return NewScanService(scanner, submitter, wizardService), sessionRepository
}

func completeScanResult() dtos.ScanResult {
	return dtos.ScanResult{
		BusinessName:          "Maple Leaf Clinic",
		IndustryID:            "healthcare",
		ProvinceCode:          "ON",
		DetectedAITools:       []string{"chatgpt"},
		DetectedDataTypes:     []string{"health_info"},
		MentionsPrivacyPolicy: true,
		MentionsConsent:       true,
		MentionsPIPEDA:        true,
	}
}

func TestScanServiceScan(t *testing.T) {
	t.Run("returns the scanner result", func(t *testing.T) {
		service, _ := newTestScanService(completeScanResult())

		result, err := service.Scan(context.Background(), "https://mapleleafclinic.ca")

		assert.NoError(t, err)
		assert.Equal(t, "https://mapleleafclinic.ca", result.URL)
		assert.Equal(t, "Maple Leaf Clinic", result.BusinessName)
	})

	t.Run("propagates scanner failures", func(t *testing.T) {
		submitter := NewAssessmentService(newFakeAssessmentRepository(), newFakeReportRepository())
		wizardService := NewWizardService(newFakeWizardSessionRepository(), submitter)
		service := NewScanService(&fakeScanner{err: errors.New("connection refused")}, submitter, wizardService)

		_, err := service.Scan(context.Background(), "https://unreachable.ca")
		assert.ErrorContains(t, err, "connection refused")
	})
}

func TestScanServiceQuickAssessment(t *testing.T) {
	t.Run("a fully detected profile completes an express assessment", func(t *testing.T) {
		service, sessionRepository := newTestScanService(completeScanResult())

		response, err := service.QuickAssessment(context.Background(), dtos.QuickAssessmentRequest{
			URL: "https://mapleleafclinic.ca",
		})

		assert.NoError(t, err)
		assert.NotNil(t, response.AssessmentID)
		assert.NotNil(t, response.ReportID)
		assert.Nil(t, response.SessionID)
		assert.Empty(t, response.MissingFields)
		assert.Empty(t, sessionRepository.sessions, "no wizard session on the express path")
	})

	t.Run("the request email lands on the draft profile", func(t *testing.T) {
		service, _ := newTestScanService(completeScanResult())

		response, err := service.QuickAssessment(context.Background(), dtos.QuickAssessmentRequest{
			URL:   "https://mapleleafclinic.ca",
			Email: "owner@mapleleafclinic.ca",
		})

		assert.NoError(t, err)
		assert.Equal(t, "owner@mapleleafclinic.ca", utils.SafeDereference(response.Profile.Email))
	})

	t.Run("an incomplete scan seeds a wizard session instead", func(t *testing.T) {
		service, sessionRepository := newTestScanService(dtos.ScanResult{
			BusinessName:    "Mystery Shop",
			DetectedAITools: []string{"copilot"},
		})

		response, err := service.QuickAssessment(context.Background(), dtos.QuickAssessmentRequest{
			URL: "https://mystery.ca",
		})

		assert.NoError(t, err)
		assert.Nil(t, response.AssessmentID)
		assert.Nil(t, response.ReportID)
		assert.NotNil(t, response.SessionID)
		assert.Equal(t, []string{"industry_id", "province_code", "has_written_policies"}, response.MissingFields)
		assert.Len(t, sessionRepository.sessions, 1)
	})

	t.Run("the seeded session carries the detected draft", func(t *testing.T) {
		service, sessionRepository := newTestScanService(dtos.ScanResult{
			BusinessName:      "Mystery Shop",
			DetectedAITools:   []string{"copilot"},
			DetectedDataTypes: []string{"customer_contact"},
		})

		response, err := service.QuickAssessment(context.Background(), dtos.QuickAssessmentRequest{
			URL: "https://mystery.ca",
		})
		assert.NoError(t, err)

		var seeded dtos.PartialProfile
		for _, session := range sessionRepository.sessions {
			stored, err := session.PartialProfile()
			assert.NoError(t, err)
			seeded = stored
		}
		assert.Equal(t, "Mystery Shop", utils.SafeDereference(seeded.BusinessName))
		assert.Equal(t, []string{"copilot"}, seeded.AITools)
		assert.Equal(t, []string{"customer_contact"}, seeded.DataTypes)
		assert.NotNil(t, response.SessionID)
	})

	t.Run("a complete draft that fails validation goes to the wizard", func(t *testing.T) {
		result := completeScanResult()
		result.ProvinceCode = "ZZ"
		service, sessionRepository := newTestScanService(result)

		response, err := service.QuickAssessment(context.Background(), dtos.QuickAssessmentRequest{
			URL: "https://mapleleafclinic.ca",
		})

		assert.NoError(t, err)
		assert.Nil(t, response.AssessmentID)
		assert.NotNil(t, response.SessionID)
		assert.Len(t, sessionRepository.sessions, 1)
	})

	t.Run("scanner failures abort the quick assessment", func(t *testing.T) {
		submitter := NewAssessmentService(newFakeAssessmentRepository(), newFakeReportRepository())
		wizardService := NewWizardService(newFakeWizardSessionRepository(), submitter)
		service := NewScanService(&fakeScanner{err: errors.New("dns failure")}, submitter, wizardService)

		_, err := service.QuickAssessment(context.Background(), dtos.QuickAssessmentRequest{URL: "https://nope.ca"})
		assert.ErrorContains(t, err, "dns failure")
	})
}
