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

type ScanRequest struct {
	URL string `json:"url" validate:"required,url"`
}

type QuickAssessmentRequest struct {
	URL   string `json:"url" validate:"required,url"`
	Email string `json:"email" validate:"omitempty,email"`
}

// ScanResult is the structured output of a single website scan. Undetected
// fields stay empty and are surfaced to the user for manual completion.
type ScanResult struct {
	URL                   string   `json:"url"`
	BusinessName          string   `json:"business_name"`
	IndustryID            string   `json:"industry_id"`
	ProvinceCode          string   `json:"province_code"`
	DetectedAITools       []string `json:"detected_ai_tools"`
	DetectedDataTypes     []string `json:"detected_data_types"`
	MentionsPrivacyPolicy bool     `json:"mentions_privacy_policy"`
	MentionsConsent       bool     `json:"mentions_consent"`
	MentionsPIPEDA        bool     `json:"mentions_pipeda"`
}

type QuickAssessmentResponse struct {
	Profile       PartialProfile `json:"profile"`
	MissingFields []string       `json:"missing_fields"`
	// set when the scan yielded enough signal for a full express assessment
	AssessmentID *string `json:"assessment_id,omitempty"`
	ReportID     *string `json:"report_id,omitempty"`
	// set when the draft is incomplete and a wizard session was seeded instead
	SessionID *string `json:"session_id,omitempty"`
}
