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

type CatalogRouter struct {
	*echo.Group
}

func NewCatalogRouter(
	apiV1Router APIV1Router,
	catalogController *controllers.CatalogController,
) CatalogRouter {
	catalogRouter := apiV1Router.Group.Group("/catalogs")
	catalogRouter.GET("/", catalogController.List)
	catalogRouter.GET("/industries/", catalogController.Industries)
	catalogRouter.GET("/provinces/", catalogController.Provinces)
	catalogRouter.GET("/ai-tools/", catalogController.AITools)
	catalogRouter.GET("/data-types/", catalogController.DataTypes)
	catalogRouter.GET("/safeguards/", catalogController.Safeguards)

	return CatalogRouter{Group: catalogRouter}
}
