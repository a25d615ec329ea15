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

package router

import (
	"github.com/labstack/echo/v4"
	"github.com/maplerisk/maplerisk/controllers"
)

type AssessmentRouter struct {
	*echo.Group
}

func NewAssessmentRouter(
	apiV1Router APIV1Router,
	assessmentController *controllers.AssessmentController,
) AssessmentRouter {
	assessmentRouter := apiV1Router.Group.Group("/assessments")
	assessmentRouter.POST("/", assessmentController.Create)
	assessmentRouter.GET("/:assessmentID/", assessmentController.Read)
	assessmentRouter.GET("/:assessmentID/report/", assessmentController.GetReport)
	assessmentRouter.PATCH("/:assessmentID/report/action-items/:itemID/", assessmentController.PatchActionItem)

	return AssessmentRouter{Group: assessmentRouter}
}
