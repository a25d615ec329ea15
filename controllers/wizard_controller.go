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
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/maplerisk/maplerisk/database/models"
	"github.com/maplerisk/maplerisk/dtos"
	"github.com/maplerisk/maplerisk/services"
	"github.com/maplerisk/maplerisk/shared"
	"github.com/maplerisk/maplerisk/wizard"
	"gorm.io/gorm"
)

type WizardController struct {
	wizardService *services.WizardService
}

func NewWizardController(wizardService *services.WizardService) *WizardController {
	return &WizardController{wizardService: wizardService}
}

func sessionToDTO(session models.WizardSession) (map[string]any, error) {
	partial, err := session.PartialProfile()
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"id":      session.ID.String(),
		"step":    session.Step,
		"profile": partial,
	}, nil
}

// @Summary Start a new guided assessment session
// @Tags Wizard
// @Success 201 {object} object{id=string,step=string,profile=dtos.PartialProfile}
// @Router /wizard/sessions [post]
func (w *WizardController) Start(c shared.Context) error {
	var seed dtos.PartialProfile
	if err := c.Bind(&seed); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	session, err := w.wizardService.StartSession(seed)
	if err != nil {
		return echo.NewHTTPError(500, "could not start session").WithInternal(err)
	}

	dto, err := sessionToDTO(session)
	if err != nil {
		return echo.NewHTTPError(500, "could not read session").WithInternal(err)
	}
	return c.JSON(http.StatusCreated, dto)
}

// @Summary Read a wizard session
// @Tags Wizard
// @Param sessionID path string true "Session ID"
// @Router /wizard/sessions/{sessionID} [get]
func (w *WizardController) Read(c shared.Context) error {
	id, err := uuid.Parse(c.Param("sessionID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid session id")
	}

	session, err := w.wizardService.GetSession(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "session not found")
		}
		return echo.NewHTTPError(500, "could not read session").WithInternal(err)
	}

	dto, err := sessionToDTO(session)
	if err != nil {
		return echo.NewHTTPError(500, "could not read session").WithInternal(err)
	}
	return c.JSON(http.StatusOK, dto)
}

// @Summary Answer the current step and advance
// @Tags Wizard
// @Param sessionID path string true "Session ID"
// @Param body body dtos.PartialProfile true "Step answers"
// @Router /wizard/sessions/{sessionID}/advance [post]
func (w *WizardController) Advance(c shared.Context) error {
	id, err := uuid.Parse(c.Param("sessionID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid session id")
	}

	var answer dtos.PartialProfile
	if err := c.Bind(&answer); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	session, err := w.wizardService.Advance(id, answer)
	if err != nil {
		return w.transitionError(err)
	}

	dto, err := sessionToDTO(session)
	if err != nil {
		return echo.NewHTTPError(500, "could not read session").WithInternal(err)
	}
	return c.JSON(http.StatusOK, dto)
}

// @Summary Go back one step
// @Tags Wizard
// @Param sessionID path string true "Session ID"
// @Param body body dtos.PartialProfile true "Step answers to keep"
// @Router /wizard/sessions/{sessionID}/back [post]
func (w *WizardController) Back(c shared.Context) error {
	id, err := uuid.Parse(c.Param("sessionID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid session id")
	}

	var answer dtos.PartialProfile
	if err := c.Bind(&answer); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	session, err := w.wizardService.Back(id, answer)
	if err != nil {
		return w.transitionError(err)
	}

	dto, err := sessionToDTO(session)
	if err != nil {
		return echo.NewHTTPError(500, "could not read session").WithInternal(err)
	}
	return c.JSON(http.StatusOK, dto)
}

// @Summary Submit the completed session
// @Tags Wizard
// @Param sessionID path string true "Session ID"
// @Param body body dtos.PartialProfile true "Final step answers"
// @Success 200 {object} services.SubmitOutcome
// @Router /wizard/sessions/{sessionID}/submit [post]
func (w *WizardController) Submit(c shared.Context) error {
	id, err := uuid.Parse(c.Param("sessionID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid session id")
	}

	var answer dtos.PartialProfile
	if err := c.Bind(&answer); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	outcome, err := w.wizardService.Submit(id, answer)
	if err != nil {
		return w.transitionError(err)
	}

	return c.JSON(http.StatusOK, outcome)
}

// @Summary Abandon a wizard session
// @Tags Wizard
// @Param sessionID path string true "Session ID"
// @Success 200
// @Router /wizard/sessions/{sessionID} [delete]
func (w *WizardController) Delete(c shared.Context) error {
	id, err := uuid.Parse(c.Param("sessionID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid session id")
	}

	if err := w.wizardService.Reset(id); err != nil {
		return echo.NewHTTPError(500, "could not delete session").WithInternal(err)
	}
	return c.NoContent(http.StatusOK)
}

func (w *WizardController) transitionError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return echo.NewHTTPError(404, "session not found")
	case errors.Is(err, wizard.ErrAlreadySubmitted),
		errors.Is(err, wizard.ErrAtFirstStep),
		errors.Is(err, wizard.ErrNotAtFinalStep),
		errors.Is(err, wizard.ErrUnknownStep):
		return echo.NewHTTPError(409, err.Error())
	}
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return echo.NewHTTPError(400, validationErrs.Error())
	}
	if errors.Is(err, wizard.ErrIncompleteAnswer) {
		return echo.NewHTTPError(400, err.Error())
	}
	return echo.NewHTTPError(500, "could not process wizard step").WithInternal(err)
}
