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
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/maplerisk/maplerisk/database/models"
	"github.com/maplerisk/maplerisk/dtos"
	"github.com/maplerisk/maplerisk/monitoring"
	"github.com/maplerisk/maplerisk/report"
	"github.com/maplerisk/maplerisk/risk"
	"github.com/maplerisk/maplerisk/shared"
	"github.com/maplerisk/maplerisk/wizard"
)

type SubmitSource string

const (
	SubmitSourceRemote        SubmitSource = "remote"
	SubmitSourceLocalFallback SubmitSource = "local_fallback"
)

// SubmitOutcome is the explicit two-branch result of a submission: either the
// profile was persisted and the stored report returned, or persistence failed
// and the report was derived locally without being stored. The fallback is a
// resilience choice, not an error state.
type SubmitOutcome struct {
	Source SubmitSource `json:"source"`
	Report dtos.Report  `json:"report"`
}

type WizardService struct {
	sessionRepository shared.WizardSessionRepository
	submitter         shared.ProfileSubmitter
}

func NewWizardService(sessionRepository shared.WizardSessionRepository, submitter shared.ProfileSubmitter) *WizardService {
	return &WizardService{
		sessionRepository: sessionRepository,
		submitter:         submitter,
	}
}

func (s *WizardService) StartSession(seed dtos.PartialProfile) (models.WizardSession, error) {
	session := models.WizardSession{
		ID:   uuid.New(),
		Step: string(wizard.First()),
	}
	if err := session.SetPartialProfile(seed); err != nil {
		return models.WizardSession{}, err
	}
	if err := s.sessionRepository.Create(nil, &session); err != nil {
		return models.WizardSession{}, err
	}
	return session, nil
}

func (s *WizardService) GetSession(id uuid.UUID) (models.WizardSession, error) {
	return s.sessionRepository.Read(id)
}

func (s *WizardService) Reset(id uuid.UUID) error {
	return s.sessionRepository.Delete(nil, id)
}

// Advance performs the validate-then-merge-then-persist transition of the
// current step.
func (s *WizardService) Advance(id uuid.UUID, answer dtos.PartialProfile) (models.WizardSession, error) {
	session, err := s.sessionRepository.Read(id)
	if err != nil {
		return models.WizardSession{}, err
	}
	stored, err := session.PartialProfile()
	if err != nil {
		return models.WizardSession{}, err
	}

	nextStep, merged, err := wizard.Advance(wizard.Step(session.Step), stored, answer)
	if err != nil {
		return models.WizardSession{}, err
	}

	session.Step = string(nextStep)
	if err := session.SetPartialProfile(merged); err != nil {
		return models.WizardSession{}, err
	}
	if err := s.sessionRepository.Save(nil, &session); err != nil {
		return models.WizardSession{}, err
	}
	return session, nil
}

func (s *WizardService) Back(id uuid.UUID, answer dtos.PartialProfile) (models.WizardSession, error) {
	session, err := s.sessionRepository.Read(id)
	if err != nil {
		return models.WizardSession{}, err
	}
	stored, err := session.PartialProfile()
	if err != nil {
		return models.WizardSession{}, err
	}

	prevStep, merged, err := wizard.Back(wizard.Step(session.Step), stored, answer)
	if err != nil {
		return models.WizardSession{}, err
	}

	session.Step = string(prevStep)
	if err := session.SetPartialProfile(merged); err != nil {
		return models.WizardSession{}, err
	}
	if err := s.sessionRepository.Save(nil, &session); err != nil {
		return models.WizardSession{}, err
	}
	return session, nil
}

// Submit assembles the complete profile, validates it, and runs it through
// the submitter exactly once. Any submitter failure falls back to local
// derivation, the session is consumed either way.
func (s *WizardService) Submit(id uuid.UUID, answer dtos.PartialProfile) (SubmitOutcome, error) {
	session, err := s.sessionRepository.Read(id)
	if err != nil {
		return SubmitOutcome{}, err
	}
	stored, err := session.PartialProfile()
	if err != nil {
		return SubmitOutcome{}, err
	}

	profile, err := wizard.Submit(wizard.Step(session.Step), stored, answer)
	if err != nil {
		return SubmitOutcome{}, err
	}
	profile.Normalize()
	if err := shared.V.Struct(profile); err != nil {
		return SubmitOutcome{}, err
	}

	outcome := s.submitWithFallback(profile)

	if err := s.sessionRepository.Delete(nil, id); err != nil {
		// the report is already derived, a stale session row is not worth
		// failing the submission over
		slog.Warn("could not delete wizard session after submit", "sessionID", id, "err", err)
	}
	return outcome, nil
}

func (s *WizardService) submitWithFallback(profile dtos.BusinessProfile) SubmitOutcome {
	_, reportDTO, err := s.submitter.SubmitProfile(profile)
	if err == nil {
		return SubmitOutcome{Source: SubmitSourceRemote, Report: reportDTO}
	}

	slog.Warn("assessment submission failed, falling back to local derivation", "err", err)
	monitoring.SubmitFallbacks.Inc()

	score, _ := risk.ComputeRiskScore(profile)
	level := risk.LevelForScore(score)
	local := report.Derive(profile, score, level)
	local.ID = uuid.New()
	local.AssessmentID = uuid.New()
	local.CreatedAt = time.Now()

	return SubmitOutcome{Source: SubmitSourceLocalFallback, Report: local}
}
