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

package shared

import (
	"context"

	"github.com/google/uuid"
	"github.com/maplerisk/maplerisk/database/models"
	"github.com/maplerisk/maplerisk/dtos"
	"gorm.io/gorm"
)

type AssessmentRepository interface {
	Create(tx *gorm.DB, assessment *models.Assessment) error
	Read(id uuid.UUID) (models.Assessment, error)
	Delete(tx *gorm.DB, id uuid.UUID) error
	Transaction(f func(tx *gorm.DB) error) error
}

type ReportRepository interface {
	Create(tx *gorm.DB, report *models.Report) error
	Save(tx *gorm.DB, report *models.Report) error
	Read(id uuid.UUID) (models.Report, error)
	FindByAssessmentID(assessmentID uuid.UUID) (models.Report, error)
}

type WizardSessionRepository interface {
	Create(tx *gorm.DB, session *models.WizardSession) error
	Save(tx *gorm.DB, session *models.WizardSession) error
	Read(id uuid.UUID) (models.WizardSession, error)
	Delete(tx *gorm.DB, id uuid.UUID) error
}

// ProfileSubmitter is the remote branch of the submit-with-fallback pattern:
// persist the profile and hand back the stored report.
type ProfileSubmitter interface {
	SubmitProfile(profile dtos.BusinessProfile) (models.Assessment, dtos.Report, error)
}

type WebsiteScanner interface {
	Scan(ctx context.Context, url string) (dtos.ScanResult, error)
}
