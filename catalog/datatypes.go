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

// DataTypes is ordered by descending sensitivity. The risk score feeds the
// data-exposure component of the overall score.
var DataTypes = []DataType{
	{Value: "health_info", Label: "Health information", Description: "Patient or client health records, treatment notes, prescriptions", RiskScore: 25},
	{Value: "financial_info", Label: "Financial information", Description: "Banking details, payment records, credit information", RiskScore: 20},
	{Value: "legal_documents", Label: "Legal documents", Description: "Contracts, case files, privileged correspondence", RiskScore: 18},
	{Value: "employee_records", Label: "Employee records", Description: "HR files, payroll data, performance reviews", RiskScore: 15},
	{Value: "customer_contact", Label: "Customer contact details", Description: "Names, emails, phone numbers, addresses", RiskScore: 12},
	{Value: "business_strategy", Label: "Business strategy", Description: "Plans, pricing, internal analysis", RiskScore: 8},
	{Value: "supplier_data", Label: "Supplier data", Description: "Vendor contracts, purchase terms", RiskScore: 6},
	{Value: "marketing_content", Label: "Public marketing content", Description: "Website copy, social media posts, ads", RiskScore: 3},
}
