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
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/maplerisk/maplerisk/services"
	"github.com/stretchr/testify/assert"
)

func newTestWizardController() *WizardController {
	submitter := newTestAssessmentService()
	wizardService := services.NewWizardService(newMemWizardSessionRepository(), submitter)
	return NewWizardController(wizardService)
}

func startSession(t *testing.T, controller *WizardController) string {
	t.Helper()
	ctx, rec := jsonContext(http.MethodPost, `{}`)
	assert.NoError(t, controller.Start(ctx))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["id"].(string)
}

func advanceSession(t *testing.T, controller *WizardController, sessionID, answer string) *echo.HTTPError {
	t.Helper()
	ctx, _ := jsonContext(http.MethodPost, answer)
	ctx.SetParamNames("sessionID")
	ctx.SetParamValues(sessionID)
	err := controller.Advance(ctx)
	if err == nil {
		return nil
	}
	var httpErr *echo.HTTPError
	assert.ErrorAs(t, err, &httpErr)
	return httpErr
}

const firstStepBody = `{"business_name": "Prairie Digital", "industry_id": "technology", "province_code": "SK"}`

func TestWizardControllerStart(t *testing.T) {
	t.Run("starts at the business profile step", func(t *testing.T) {
		controller := newTestWizardController()

		ctx, rec := jsonContext(http.MethodPost, `{}`)
		assert.NoError(t, controller.Start(ctx))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var body map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "business_profile", body["step"])
		assert.NotEmpty(t, body["id"])
	})

	t.Run("a seed profile is stored with the session", func(t *testing.T) {
		controller := newTestWizardController()

		ctx, rec := jsonContext(http.MethodPost, `{"business_name": "Seeded Co"}`)
		assert.NoError(t, controller.Start(ctx))

		var body map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		profile := body["profile"].(map[string]any)
		assert.Equal(t, "Seeded Co", profile["business_name"])
	})
}

func TestWizardControllerAdvance(t *testing.T) {
	t.Run("a complete first step answer advances to ai_tools", func(t *testing.T) {
		controller := newTestWizardController()
		sessionID := startSession(t, controller)

		ctx, rec := jsonContext(http.MethodPost, firstStepBody)
		ctx.SetParamNames("sessionID")
		ctx.SetParamValues(sessionID)

		assert.NoError(t, controller.Advance(ctx))

		var body map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "ai_tools", body["step"])
	})

	t.Run("an incomplete first step answer is a 400", func(t *testing.T) {
		controller := newTestWizardController()
		sessionID := startSession(t, controller)

		httpErr := advanceSession(t, controller, sessionID, `{"business_name": "Only A Name"}`)

		assert.NotNil(t, httpErr)
		assert.Equal(t, 400, httpErr.Code)
	})

	t.Run("an unknown session is a 404", func(t *testing.T) {
		controller := newTestWizardController()

		httpErr := advanceSession(t, controller, "3b24b74b-8a14-4f20-8a33-062296aa9d2c", firstStepBody)

		assert.NotNil(t, httpErr)
		assert.Equal(t, 404, httpErr.Code)
	})

	t.Run("advancing past the final step is a 409", func(t *testing.T) {
		controller := newTestWizardController()
		sessionID := startSession(t, controller)

		assert.Nil(t, advanceSession(t, controller, sessionID, firstStepBody))
		assert.Nil(t, advanceSession(t, controller, sessionID, `{"ai_tools": []}`))
		assert.Nil(t, advanceSession(t, controller, sessionID, `{"data_types": []}`))
		assert.Nil(t, advanceSession(t, controller, sessionID, `{"usage_patterns": [], "has_written_policies": false}`))
		assert.Nil(t, advanceSession(t, controller, sessionID, `{"safeguards": []}`))

		httpErr := advanceSession(t, controller, sessionID, `{}`)

		assert.NotNil(t, httpErr)
		assert.Equal(t, 409, httpErr.Code)
	})
}

func TestWizardControllerBack(t *testing.T) {
	t.Run("going back from the first step is a 409", func(t *testing.T) {
		controller := newTestWizardController()
		sessionID := startSession(t, controller)

		ctx, _ := jsonContext(http.MethodPost, `{}`)
		ctx.SetParamNames("sessionID")
		ctx.SetParamValues(sessionID)

		err := controller.Back(ctx)

		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 409, httpErr.Code)
	})

	t.Run("back returns to the previous step and keeps the profile", func(t *testing.T) {
		controller := newTestWizardController()
		sessionID := startSession(t, controller)
		assert.Nil(t, advanceSession(t, controller, sessionID, firstStepBody))

		ctx, rec := jsonContext(http.MethodPost, `{}`)
		ctx.SetParamNames("sessionID")
		ctx.SetParamValues(sessionID)

		assert.NoError(t, controller.Back(ctx))

		var body map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "business_profile", body["step"])
		profile := body["profile"].(map[string]any)
		assert.Equal(t, "Prairie Digital", profile["business_name"])
	})
}

func TestWizardControllerSubmit(t *testing.T) {
	walkToSafeguards := func(t *testing.T, controller *WizardController, sessionID string) {
		t.Helper()
		assert.Nil(t, advanceSession(t, controller, sessionID, firstStepBody))
		assert.Nil(t, advanceSession(t, controller, sessionID, `{"ai_tools": ["claude"]}`))
		assert.Nil(t, advanceSession(t, controller, sessionID, `{"data_types": ["customer_contact"]}`))
		assert.Nil(t, advanceSession(t, controller, sessionID, `{"usage_patterns": ["OWNER_MANAGER"], "has_written_policies": true}`))
	}

	t.Run("submits from the safeguards step and returns the outcome", func(t *testing.T) {
		controller := newTestWizardController()
		sessionID := startSession(t, controller)
		walkToSafeguards(t, controller, sessionID)

		ctx, rec := jsonContext(http.MethodPost, `{"safeguards": ["staff_training"]}`)
		ctx.SetParamNames("sessionID")
		ctx.SetParamValues(sessionID)

		assert.NoError(t, controller.Submit(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)

		var outcome services.SubmitOutcome
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &outcome))
		assert.Equal(t, services.SubmitSourceRemote, outcome.Source)
		assert.NotEmpty(t, outcome.Report.ActionPlan)
	})

	t.Run("submit from a mid-wizard step is a 409", func(t *testing.T) {
		controller := newTestWizardController()
		sessionID := startSession(t, controller)

		ctx, _ := jsonContext(http.MethodPost, `{}`)
		ctx.SetParamNames("sessionID")
		ctx.SetParamValues(sessionID)

		err := controller.Submit(ctx)

		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 409, httpErr.Code)
	})

	t.Run("the consumed session reads as 404 afterwards", func(t *testing.T) {
		controller := newTestWizardController()
		sessionID := startSession(t, controller)
		walkToSafeguards(t, controller, sessionID)

		submitCtx, _ := jsonContext(http.MethodPost, `{}`)
		submitCtx.SetParamNames("sessionID")
		submitCtx.SetParamValues(sessionID)
		assert.NoError(t, controller.Submit(submitCtx))

		readCtx, _ := jsonContext(http.MethodGet, "")
		readCtx.SetParamNames("sessionID")
		readCtx.SetParamValues(sessionID)

		err := controller.Read(readCtx)

		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 404, httpErr.Code)
	})

	t.Run("delete abandons the session", func(t *testing.T) {
		controller := newTestWizardController()
		sessionID := startSession(t, controller)

		deleteCtx, rec := jsonContext(http.MethodDelete, "")
		deleteCtx.SetParamNames("sessionID")
		deleteCtx.SetParamValues(sessionID)
		assert.NoError(t, controller.Delete(deleteCtx))
		assert.Equal(t, http.StatusOK, rec.Code)

		readCtx, _ := jsonContext(http.MethodGet, "")
		readCtx.SetParamNames("sessionID")
		readCtx.SetParamValues(sessionID)

		err := controller.Read(readCtx)

		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 404, httpErr.Code)
	})
}
