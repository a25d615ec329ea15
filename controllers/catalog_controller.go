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
	"net/http"

	"github.com/maplerisk/maplerisk/catalog"
	"github.com/maplerisk/maplerisk/shared"
)

// CatalogController serves the static option catalogs the wizard and the
// frontend forms are built from.
type CatalogController struct{}

func NewCatalogController() *CatalogController {
	return &CatalogController{}
}

// @Summary List all option catalogs
// @Tags Catalogs
// @Success 200 {object} object{industries=[]catalog.Industry,provinces=[]catalog.Province,aiTools=[]catalog.AITool,dataTypes=[]catalog.DataType,safeguards=[]catalog.Safeguard}
// @Router /catalogs [get]
func (cc *CatalogController) List(c shared.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"industries": catalog.Industries,
		"provinces":  catalog.Provinces,
		"aiTools":    catalog.AITools,
		"dataTypes":  catalog.DataTypes,
		"safeguards": catalog.Safeguards,
	})
}

// @Summary List industries
// @Tags Catalogs
// @Success 200 {array} catalog.Industry
// @Router /catalogs/industries [get]
func (cc *CatalogController) Industries(c shared.Context) error {
	return c.JSON(http.StatusOK, catalog.Industries)
}

// @Summary List provinces and territories
// @Tags Catalogs
// @Success 200 {array} catalog.Province
// @Router /catalogs/provinces [get]
func (cc *CatalogController) Provinces(c shared.Context) error {
	return c.JSON(http.StatusOK, catalog.Provinces)
}

// @Summary List known AI tools
// @Tags Catalogs
// @Success 200 {array} catalog.AITool
// @Router /catalogs/ai-tools [get]
func (cc *CatalogController) AITools(c shared.Context) error {
	return c.JSON(http.StatusOK, catalog.AITools)
}

// @Summary List data type categories
// @Tags Catalogs
// @Success 200 {array} catalog.DataType
// @Router /catalogs/data-types [get]
func (cc *CatalogController) DataTypes(c shared.Context) error {
	return c.JSON(http.StatusOK, catalog.DataTypes)
}

// @Summary List recognized safeguards
// @Tags Catalogs
// @Success 200 {array} catalog.Safeguard
// @Router /catalogs/safeguards [get]
func (cc *CatalogController) Safeguards(c shared.Context) error {
	return c.JSON(http.StatusOK, catalog.Safeguards)
}
