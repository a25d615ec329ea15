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

package dtos

import (
	"time"

	"github.com/google/uuid"
)

type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "LOW"
	RiskLevelMedium   RiskLevel = "MEDIUM"
	RiskLevelHigh     RiskLevel = "HIGH"
	RiskLevelCritical RiskLevel = "CRITICAL"
)

// RiskBreakdown carries the per-component risk contributions shown to the
// user. Data exposure, tool risk and usage risk are display-capped, the raw
// sums feed the total. The multipliers are informational only, they are not
// applied by the scoring arithmetic.
type RiskBreakdown struct {
	DataExposure       float64 `json:"dataExposure"`
	ToolRisk           float64 `json:"toolRisk"`
	UsagePatternRisk   float64 `json:"usagePatternRisk"`
	ComplianceGap      float64 `json:"complianceGap"`
	SafeguardCredit    float64 `json:"safeguardCredit"`
	IndustryMultiplier float64 `json:"industryMultiplier"`
	ProvinceMultiplier float64 `json:"provinceMultiplier"`
}

type ExecutiveSummary struct {
	RiskScore       int           `json:"riskScore"`
	RiskLevel       RiskLevel     `json:"riskLevel"`
	Breakdown       RiskBreakdown `json:"breakdown"`
	TopRisks        []string      `json:"topRisks"`
	QuickWins       []string      `json:"quickWins"`
	IndustryContext string        `json:"industryContext"`
	ProvinceContext string        `json:"provinceContext"`
}

type ComplianceIssue struct {
	Regulation  string    `json:"regulation"`
	Severity    RiskLevel `json:"severity"`
	Description string    `json:"description"`
	Remediation string    `json:"remediation"`
	Resources   []string  `json:"resources"`
}

type ComplianceStatus struct {
	Regulation string            `json:"regulation"`
	Compliant  bool              `json:"compliant"`
	Issues     []ComplianceIssue `json:"issues"`
}

type LegalCompliance struct {
	PIPEDAStatus     ComplianceStatus `json:"pipedaStatus"`
	BillC27Status    ComplianceStatus `json:"billC27Status"`
	ProvincialStatus ComplianceStatus `json:"provincialStatus"`
}

type DataFlow struct {
	DataType    string    `json:"dataType"`
	Label       string    `json:"label"`
	Tools       []string  `json:"tools"`
	RiskLevel   RiskLevel `json:"riskLevel"`
	CrossBorder bool      `json:"crossBorder"`
}

type DataExposure struct {
	DataType string   `json:"dataType"`
	Label    string   `json:"label"`
	Score    int      `json:"score"`
	Concerns []string `json:"concerns"`
}

type DataRiskAssessment struct {
	Flows            []DataFlow     `json:"flows"`
	ExposureAnalysis []DataExposure `json:"exposureAnalysis"`
}

type BusinessImpact struct {
	FederalMaxPenalty    int64     `json:"federalMaxPenalty"`
	ProvincialMaxPenalty int64     `json:"provincialMaxPenalty"`
	ProvincialStatute    string    `json:"provincialStatute"`
	ReputationalRisk     RiskLevel `json:"reputationalRisk"`
	InsuranceGaps        []string  `json:"insuranceGaps"`
	OperationalRisks     []string  `json:"operationalRisks"`
}

type CommunicationTemplate struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Audience     string `json:"audience"`
	Body         string `json:"body"`
	Customizable bool   `json:"customizable"`
}

type ActionPriority string

const (
	ActionPriorityCritical ActionPriority = "CRITICAL"
	ActionPriorityHigh     ActionPriority = "HIGH"
	ActionPriorityMedium   ActionPriority = "MEDIUM"
	ActionPriorityLow      ActionPriority = "LOW"
)

type ActionItem struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Priority     ActionPriority `json:"priority"`
	TimelineDays int            `json:"timelineDays"`
	Completed    bool           `json:"completed"`
}

type ActionItemPatch struct {
	Completed *bool `json:"completed" validate:"required"`
}

// Report is produced once and never mutated afterwards, except for the
// client-local completed flag on individual action items.
type Report struct {
	ID                     uuid.UUID               `json:"id"`
	AssessmentID           uuid.UUID               `json:"assessmentId"`
	CreatedAt              time.Time               `json:"createdAt"`
	RiskScore              int                     `json:"riskScore"`
	RiskLevel              RiskLevel               `json:"riskLevel"`
	ExecutiveSummary       ExecutiveSummary        `json:"executiveSummary"`
	LegalCompliance        LegalCompliance         `json:"legalCompliance"`
	DataRiskAssessment     DataRiskAssessment      `json:"dataRiskAssessment"`
	BusinessImpact         BusinessImpact          `json:"businessImpact"`
	CommunicationTemplates []CommunicationTemplate `json:"communicationTemplates"`
	ActionPlan             []ActionItem            `json:"actionPlan"`
}
