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

	"github.com/maplerisk/maplerisk/dtos"
	"github.com/maplerisk/maplerisk/monitoring"
	"github.com/maplerisk/maplerisk/scan"
	"github.com/maplerisk/maplerisk/shared"
)

type ScanService struct {
	scanner       shared.WebsiteScanner
	submitter     shared.ProfileSubmitter
	wizardService *WizardService
}

func NewScanService(scanner shared.WebsiteScanner, submitter shared.ProfileSubmitter, wizardService *WizardService) *ScanService {
	return &ScanService{
		scanner:       scanner,
		submitter:     submitter,
		wizardService: wizardService,
	}
}

func (s *ScanService) Scan(ctx context.Context, url string) (dtos.ScanResult, error) {
	result, err := s.scanner.Scan(ctx, url)
	if err != nil {
		monitoring.WebsiteScans.WithLabelValues("error").Inc()
		return dtos.ScanResult{}, err
	}
	monitoring.WebsiteScans.WithLabelValues("success").Inc()
	return result, nil
}

// QuickAssessment scans a website and either completes an express assessment
// on the spot or seeds a wizard session with the draft profile so the user
// only answers what the scan could not detect.
func (s *ScanService) QuickAssessment(ctx context.Context, req dtos.QuickAssessmentRequest) (dtos.QuickAssessmentResponse, error) {
	result, err := s.Scan(ctx, req.URL)
	if err != nil {
		return dtos.QuickAssessmentResponse{}, err
	}

	draft := scan.ToDraftProfile(result)
	if req.Email != "" {
		draft.Email = &req.Email
	}

	missing := draft.MissingFields()
	if len(missing) == 0 {
		profile := draft.Assemble()
		profile.Normalize()
		if err := shared.V.Struct(profile); err == nil {
			assessment, reportDTO, err := s.submitter.SubmitProfile(profile)
			if err != nil {
				return dtos.QuickAssessmentResponse{}, err
			}
			assessmentID := assessment.ID.String()
			reportID := reportDTO.ID.String()
			return dtos.QuickAssessmentResponse{
				Profile:      draft,
				AssessmentID: &assessmentID,
				ReportID:     &reportID,
			}, nil
		}
		// a complete but invalid draft (bad catalog id slipped through) goes
		// to the wizard like an incomplete one
	}

	session, err := s.wizardService.StartSession(draft)
	if err != nil {
		return dtos.QuickAssessmentResponse{}, err
	}
	sessionID := session.ID.String()
	return dtos.QuickAssessmentResponse{
		Profile:       draft,
		MissingFields: missing,
		SessionID:     &sessionID,
	}, nil
}
