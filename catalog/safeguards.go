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

package catalog

// Safeguards each carry a fixed credit subtracted from the aggregate risk.
var Safeguards = []Safeguard{
	{Value: "canadian_hosted", Label: "Canadian-hosted AI tools", Description: "AI vendors that keep submitted data in Canada", Credit: 20},
	{Value: "customer_consent", Label: "Customer consent process", Description: "Documented consent before customer data reaches AI tools", Credit: 15},
	{Value: "access_controls", Label: "Access controls", Description: "Role-based access to AI tools and the data fed into them", Credit: 12},
	{Value: "ai_privacy_policy", Label: "AI use disclosed in privacy policy", Description: "Published privacy policy covering AI processing", Credit: 10},
	{Value: "staff_training", Label: "Staff privacy training", Description: "Employees trained on what may be shared with AI tools", Credit: 10},
	{Value: "incident_response", Label: "Incident response plan", Description: "Written plan for data incidents involving AI vendors", Credit: 8},
	{Value: "vendor_assessment", Label: "Vendor assessments", Description: "Privacy terms of AI vendors reviewed before adoption", Credit: 6},
	{Value: "data_retention_policy", Label: "Data retention policy", Description: "Retention and deletion rules covering AI inputs", Credit: 5},
}

// Safeguard identifiers with special meaning to the compliance rules.
const (
	SafeguardCustomerConsent = "customer_consent"
	SafeguardAIPrivacyPolicy = "ai_privacy_policy"
	SafeguardCanadianHosted  = "canadian_hosted"
)
