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

// Package catalog holds the immutable reference tables the scoring engine and
// the report derivation consume: industries, provinces, AI tools, data types
// and safeguards. Plain data plus free lookup functions, loaded once at init.
// Lookups never fail hard, unknown identifiers degrade to zero contribution.
package catalog

type DataResidency string

const (
	ResidencyUS      DataResidency = "US"
	ResidencyEU      DataResidency = "EU"
	ResidencyCanada  DataResidency = "CANADA"
	ResidencyUnknown DataResidency = "UNKNOWN"
)

type Industry struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	// applied multiplier is a design decision, see the scoring engine
	RiskMultiplier   float64  `json:"riskMultiplier"`
	TypicalDataTypes []string `json:"typicalDataTypes"`
}

type Province struct {
	Code             string  `json:"code"`
	Name             string  `json:"name"`
	RiskMultiplier   float64 `json:"riskMultiplier"`
	PrivacyStatute   string  `json:"privacyStatute"`
	HasProvincialLaw bool    `json:"hasProvincialLaw"`
}

type AITool struct {
	ID                  string        `json:"id"`
	Name                string        `json:"name"`
	Category            string        `json:"category"`
	BaseRiskScore       float64       `json:"baseRiskScore"`
	UsesDataForTraining bool          `json:"usesDataForTraining"`
	DataResidency       DataResidency `json:"dataResidency"`
	HasEnterpriseTier   bool          `json:"hasEnterpriseTier"`
}

type DataType struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
	RiskScore   int    `json:"riskScore"`
}

type Safeguard struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Credit      int    `json:"credit"`
}

var (
	industryByID  = make(map[string]Industry, len(Industries))
	provinceByCode = make(map[string]Province, len(Provinces))
	aiToolByID    = make(map[string]AITool, len(AITools))
	dataTypeByValue = make(map[string]DataType, len(DataTypes))
	safeguardByValue = make(map[string]Safeguard, len(Safeguards))
)

func init() {
	for _, industry := range Industries {
		industryByID[industry.ID] = industry
	}
	for _, province := range Provinces {
		provinceByCode[province.Code] = province
	}
	for _, tool := range AITools {
		aiToolByID[tool.ID] = tool
	}
	for _, dataType := range DataTypes {
		dataTypeByValue[dataType.Value] = dataType
	}
	for _, safeguard := range Safeguards {
		safeguardByValue[safeguard.Value] = safeguard
	}
}

func IndustryByID(id string) (Industry, bool) {
	industry, ok := industryByID[id]
	return industry, ok
}

func ProvinceByCode(code string) (Province, bool) {
	province, ok := provinceByCode[code]
	return province, ok
}

func AIToolByID(id string) (AITool, bool) {
	tool, ok := aiToolByID[id]
	return tool, ok
}

func DataTypeByValue(value string) (DataType, bool) {
	dataType, ok := dataTypeByValue[value]
	return dataType, ok
}

func SafeguardByValue(value string) (Safeguard, bool) {
	safeguard, ok := safeguardByValue[value]
	return safeguard, ok
}

// ToolDisplayName falls back to the raw identifier so unresolved tools still
// render instead of erroring.
func ToolDisplayName(id string) string {
	if tool, ok := aiToolByID[id]; ok {
		return tool.Name
	}
	return id
}

func DataTypeLabel(value string) string {
	if dataType, ok := dataTypeByValue[value]; ok {
		return dataType.Label
	}
	return value
}
