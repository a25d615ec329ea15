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
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/maplerisk/maplerisk/dtos"
	"github.com/maplerisk/maplerisk/services"
	"github.com/maplerisk/maplerisk/shared"
)

type ScanController struct {
	scanService *services.ScanService
}

func NewScanController(scanService *services.ScanService) *ScanController {
	return &ScanController{scanService: scanService}
}

// @Summary Scan a website for AI usage signals
// @Tags Scan
// @Param body body dtos.ScanRequest true "Request body"
// @Success 200 {object} dtos.ScanResult
// @Router /scraper/scan [post]
func (s *ScanController) Scan(c shared.Context) error {
	var req dtos.ScanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	result, err := s.scanService.Scan(c.Request().Context(), req.URL)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "could not scan website").WithInternal(err)
	}

	return c.JSON(http.StatusOK, result)
}

// @Summary Scan a website and build an assessment from the result
// @Tags Scan
// @Param body body dtos.QuickAssessmentRequest true "Request body"
// @Success 200 {object} dtos.QuickAssessmentResponse
// @Router /scraper/quick-assessment [post]
func (s *ScanController) QuickAssessment(c shared.Context) error {
	var req dtos.QuickAssessmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	resp, err := s.scanService.QuickAssessment(c.Request().Context(), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "could not build quick assessment").WithInternal(err)
	}

	return c.JSON(http.StatusOK, resp)
}
