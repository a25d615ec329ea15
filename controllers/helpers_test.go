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

package controllers

import (
	"net/http/httptest"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/maplerisk/maplerisk/database/models"
	"github.com/maplerisk/maplerisk/services"
	"gorm.io/gorm"
)

// in-memory repositories so controllers can be exercised end to end without a
// database

type memAssessmentRepository struct {
	assessments map[uuid.UUID]models.Assessment
}

func newMemAssessmentRepository() *memAssessmentRepository {
	return &memAssessmentRepository{assessments: map[uuid.UUID]models.Assessment{}}
}

func (m *memAssessmentRepository) Create(tx *gorm.DB, assessment *models.Assessment) error {
	m.assessments[assessment.ID] = *assessment
	return nil
}

func (m *memAssessmentRepository) Read(id uuid.UUID) (models.Assessment, error) {
	assessment, ok := m.assessments[id]
	if !ok {
		return models.Assessment{}, gorm.ErrRecordNotFound
	}
	return assessment, nil
}

func (m *memAssessmentRepository) Delete(tx *gorm.DB, id uuid.UUID) error {
	delete(m.assessments, id)
	return nil
}

func (m *memAssessmentRepository) Transaction(f func(tx *gorm.DB) error) error {
	return f(nil)
}

type memReportRepository struct {
	reports map[uuid.UUID]models.Report
}

func newMemReportRepository() *memReportRepository {
	return &memReportRepository{reports: map[uuid.UUID]models.Report{}}
}

func (m *memReportRepository) Create(tx *gorm.DB, report *models.Report) error {
	m.reports[report.ID] = *report
	return nil
}

func (m *memReportRepository) Save(tx *gorm.DB, report *models.Report) error {
	m.reports[report.ID] = *report
	return nil
}

func (m *memReportRepository) Read(id uuid.UUID) (models.Report, error) {
	report, ok := m.reports[id]
	if !ok {
		return models.Report{}, gorm.ErrRecordNotFound
	}
	return report, nil
}

func (m *memReportRepository) FindByAssessmentID(assessmentID uuid.UUID) (models.Report, error) {
	for _, report := range m.reports {
		if report.AssessmentID == assessmentID {
			return report, nil
		}
	}
	return models.Report{}, gorm.ErrRecordNotFound
}

type memWizardSessionRepository struct {
	sessions map[uuid.UUID]models.WizardSession
}

func newMemWizardSessionRepository() *memWizardSessionRepository {
	return &memWizardSessionRepository{sessions: map[uuid.UUID]models.WizardSession{}}
}

func (m *memWizardSessionRepository) Create(tx *gorm.DB, session *models.WizardSession) error {
	m.sessions[session.ID] = *session
	return nil
}

func (m *memWizardSessionRepository) Save(tx *gorm.DB, session *models.WizardSession) error {
	m.sessions[session.ID] = *session
	return nil
}

func (m *memWizardSessionRepository) Read(id uuid.UUID) (models.WizardSession, error) {
	session, ok := m.sessions[id]
	if !ok {
		return models.WizardSession{}, gorm.ErrRecordNotFound
	}
	return session, nil
}

func (m *memWizardSessionRepository) Delete(tx *gorm.DB, id uuid.UUID) error {
	delete(m.sessions, id)
	return nil
}

func newTestAssessmentService() *services.AssessmentService {
	return services.NewAssessmentService(newMemAssessmentRepository(), newMemReportRepository())
}

func jsonContext(method, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	e := echo.New()
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}
