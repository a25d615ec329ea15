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
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/maplerisk/maplerisk/dtos"
	"github.com/maplerisk/maplerisk/services"
	"github.com/maplerisk/maplerisk/shared"
	"gorm.io/gorm"
)

type AssessmentController struct {
	assessmentService *services.AssessmentService
}

func NewAssessmentController(assessmentService *services.AssessmentService) *AssessmentController {
	return &AssessmentController{assessmentService: assessmentService}
}

// @Summary Submit a business profile for assessment
// @Tags Assessments
// @Param body body dtos.BusinessProfile true "Request body"
// @Success 201 {object} object{id=string,reportId=string}
// @Router /assessments [post]
func (a *AssessmentController) Create(c shared.Context) error {
	var profile dtos.BusinessProfile
	if err := c.Bind(&profile); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	profile.Normalize()
	if err := shared.V.Struct(profile); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	assessment, reportDTO, err := a.assessmentService.SubmitProfile(profile)
	if err != nil {
		return echo.NewHTTPError(500, "could not create assessment").WithInternal(err)
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"id":       assessment.ID.String(),
		"reportId": reportDTO.ID.String(),
	})
}

// @Summary Read an assessment
// @Tags Assessments
// @Param assessmentID path string true "Assessment ID"
// @Success 200 {object} models.Assessment
// @Router /assessments/{assessmentID} [get]
func (a *AssessmentController) Read(c shared.Context) error {
	id, err := uuid.Parse(c.Param("assessmentID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid assessment id")
	}

	assessment, err := a.assessmentService.GetAssessment(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "assessment not found")
		}
		return echo.NewHTTPError(500, "could not read assessment").WithInternal(err)
	}

	return c.JSON(http.StatusOK, assessment)
}

// @Summary Get the derived report for an assessment
// @Tags Assessments
// @Param assessmentID path string true "Assessment ID"
// @Success 200 {object} dtos.Report
// @Router /assessments/{assessmentID}/report [get]
func (a *AssessmentController) GetReport(c shared.Context) error {
	id, err := uuid.Parse(c.Param("assessmentID"))
	if err != nil {
		return echo.NewHTTPError(404, "no data")
	}

	reportDTO, err := a.assessmentService.GetReportByAssessmentID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "no data")
		}
		return echo.NewHTTPError(500, "could not read report").WithInternal(err)
	}

	return c.JSON(http.StatusOK, reportDTO)
}

// @Summary Toggle an action plan item
// @Tags Assessments
// @Param assessmentID path string true "Assessment ID"
// @Param itemID path string true "Action item ID"
// @Param body body dtos.ActionItemPatch true "Request body"
// @Success 200 {object} dtos.Report
// @Router /assessments/{assessmentID}/report/action-items/{itemID} [patch]
func (a *AssessmentController) PatchActionItem(c shared.Context) error {
	id, err := uuid.Parse(c.Param("assessmentID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid assessment id")
	}
	itemID := shared.SanitizeParam(c.Param("itemID"))

	var patch dtos.ActionItemPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if patch.Completed == nil {
		return echo.NewHTTPError(400, "completed is required")
	}

	reportDTO, err := a.assessmentService.ToggleActionItem(id, itemID, *patch.Completed)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "assessment not found")
		}
		if errors.Is(err, services.ErrActionItemNotFound) {
			return echo.NewHTTPError(404, "action item not found")
		}
		return echo.NewHTTPError(500, "could not update action item").WithInternal(err)
	}

	return c.JSON(http.StatusOK, reportDTO)
}
