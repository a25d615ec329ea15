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

// Industries is ordered by descending risk multiplier. The typical data types
// are informational defaults for the wizard, they are never enforced.
var Industries = []Industry{
	{
		ID:               "healthcare",
		Name:             "Healthcare & Wellness",
		Description:      "Clinics, dental offices, physiotherapy, wellness practitioners",
		RiskMultiplier:   1.5,
		TypicalDataTypes: []string{"health_info", "customer_contact", "employee_records"},
	},
	{
		ID:               "finance",
		Name:             "Financial Services",
		Description:      "Bookkeeping, lending, insurance brokers, financial advisors",
		RiskMultiplier:   1.4,
		TypicalDataTypes: []string{"financial_info", "customer_contact", "legal_documents"},
	},
	{
		ID:               "legal",
		Name:             "Legal Services",
		Description:      "Law firms, notaries, paralegal services",
		RiskMultiplier:   1.35,
		TypicalDataTypes: []string{"legal_documents", "customer_contact", "financial_info"},
	},
	{
		ID:               "accounting",
		Name:             "Accounting & Tax",
		Description:      "Accounting firms, tax preparation, payroll services",
		RiskMultiplier:   1.3,
		TypicalDataTypes: []string{"financial_info", "employee_records", "customer_contact"},
	},
	{
		ID:               "real_estate",
		Name:             "Real Estate",
		Description:      "Brokerages, property management, appraisal",
		RiskMultiplier:   1.15,
		TypicalDataTypes: []string{"financial_info", "customer_contact", "legal_documents"},
	},
	{
		ID:               "professional_services",
		Name:             "Professional Services",
		Description:      "Consulting, HR services, recruiting, training",
		RiskMultiplier:   1.1,
		TypicalDataTypes: []string{"customer_contact", "employee_records", "business_strategy"},
	},
	{
		ID:               "technology",
		Name:             "Technology",
		Description:      "Software shops, IT services, digital agencies",
		RiskMultiplier:   1.05,
		TypicalDataTypes: []string{"customer_contact", "business_strategy", "supplier_data"},
	},
	{
		ID:               "retail",
		Name:             "Retail & E-Commerce",
		Description:      "Shops, online stores, distributors",
		RiskMultiplier:   1.0,
		TypicalDataTypes: []string{"customer_contact", "financial_info", "marketing_content"},
	},
	{
		ID:               "construction",
		Name:             "Construction & Trades",
		Description:      "Contractors, trades, building services",
		RiskMultiplier:   0.95,
		TypicalDataTypes: []string{"employee_records", "supplier_data", "customer_contact"},
	},
	{
		ID:               "hospitality",
		Name:             "Hospitality & Food Service",
		Description:      "Restaurants, catering, accommodation",
		RiskMultiplier:   0.9,
		TypicalDataTypes: []string{"customer_contact", "employee_records", "marketing_content"},
	},
	{
		ID:               "marketing",
		Name:             "Marketing & Creative",
		Description:      "Agencies, studios, freelance creative services",
		RiskMultiplier:   0.85,
		TypicalDataTypes: []string{"marketing_content", "customer_contact", "business_strategy"},
	},
}
