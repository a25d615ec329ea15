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

	"github.com/google/uuid"
	"github.com/maplerisk/maplerisk/database/models"
	"github.com/maplerisk/maplerisk/dtos"
	"gorm.io/gorm"
)

// in-memory repository stand-ins so the services can be exercised without a
// database

type fakeAssessmentRepository struct {
	assessments map[uuid.UUID]models.Assessment
	createErr   error
}

func newFakeAssessmentRepository() *fakeAssessmentRepository {
	return &fakeAssessmentRepository{assessments: map[uuid.UUID]models.Assessment{}}
}

func (f *fakeAssessmentRepository) Create(tx *gorm.DB, assessment *models.Assessment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.assessments[assessment.ID] = *assessment
	return nil
}

func (f *fakeAssessmentRepository) Read(id uuid.UUID) (models.Assessment, error) {
	assessment, ok := f.assessments[id]
	if !ok {
		return models.Assessment{}, gorm.ErrRecordNotFound
	}
	return assessment, nil
}

func (f *fakeAssessmentRepository) Delete(tx *gorm.DB, id uuid.UUID) error {
	delete(f.assessments, id)
	return nil
}

func (f *fakeAssessmentRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type fakeReportRepository struct {
	reports map[uuid.UUID]models.Report
}

func newFakeReportRepository() *fakeReportRepository {
	return &fakeReportRepository{reports: map[uuid.UUID]models.Report{}}
}

func (f *fakeReportRepository) Create(tx *gorm.DB, report *models.Report) error {
	f.reports[report.ID] = *report
	return nil
}

func (f *fakeReportRepository) Save(tx *gorm.DB, report *models.Report) error {
	f.reports[report.ID] = *report
	return nil
}

func (f *fakeReportRepository) Read(id uuid.UUID) (models.Report, error) {
	report, ok := f.reports[id]
	if !ok {
		return models.Report{}, gorm.ErrRecordNotFound
	}
	return report, nil
}

func (f *fakeReportRepository) FindByAssessmentID(assessmentID uuid.UUID) (models.Report, error) {
	for _, report := range f.reports {
		if report.AssessmentID == assessmentID {
			return report, nil
		}
	}
	return models.Report{}, gorm.ErrRecordNotFound
}

type fakeWizardSessionRepository struct {
	sessions map[uuid.UUID]models.WizardSession
}

func newFakeWizardSessionRepository() *fakeWizardSessionRepository {
	return &fakeWizardSessionRepository{sessions: map[uuid.UUID]models.WizardSession{}}
}

func (f *fakeWizardSessionRepository) Create(tx *gorm.DB, session *models.WizardSession) error {
	f.sessions[session.ID] = *session
	return nil
}

func (f *fakeWizardSessionRepository) Save(tx *gorm.DB, session *models.WizardSession) error {
	f.sessions[session.ID] = *session
	return nil
}

func (f *fakeWizardSessionRepository) Read(id uuid.UUID) (models.WizardSession, error) {
	session, ok := f.sessions[id]
	if !ok {
		return models.WizardSession{}, gorm.ErrRecordNotFound
	}
	return session, nil
}

func (f *fakeWizardSessionRepository) Delete(tx *gorm.DB, id uuid.UUID) error {
	delete(f.sessions, id)
	return nil
}

type fakeScanner struct {
	result dtos.ScanResult
	err    error
}

func (f *fakeScanner) Scan(ctx context.Context, url string) (dtos.ScanResult, error) {
	if f.err != nil {
		return dtos.ScanResult{}, f.err
	}
	result := f.result
	result.URL = url
	return result, nil
}

type failingSubmitter struct {
	err error
}

func (f *failingSubmitter) SubmitProfile(profile dtos.BusinessProfile) (models.Assessment, dtos.Report, error) {
	return models.Assessment{}, dtos.Report{}, f.err
}
