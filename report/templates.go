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

package report

import (
	"fmt"

	"github.com/maplerisk/maplerisk/dtos"
)

// communicationTemplates returns the fixed set of customer- and staff-facing
// documents, with the business name interpolated where one is available.
func communicationTemplates(profile dtos.BusinessProfile) []dtos.CommunicationTemplate {
	name := profile.BusinessName
	if name == "" {
		name = "our business"
	}

	return []dtos.CommunicationTemplate{
		{
			ID:       "privacy_policy_clause",
			Title:    "Privacy policy AI clause",
			Audience: "customers",
			Body: fmt.Sprintf("%s uses artificial intelligence tools to support day-to-day operations. "+
				"Where personal information is processed by such tools, we limit the information shared to what is necessary, "+
				"review each vendor's data handling practices, and do not permit the use of your information to train third-party models without your consent. "+
				"Questions about our AI practices can be directed to our privacy contact.", name),
			Customizable: true,
		},
		{
			ID:       "consent_form",
			Title:    "Customer consent form",
			Audience: "customers",
			Body: fmt.Sprintf("I consent to %s processing the personal information I provide with the assistance of artificial intelligence tools, "+
				"as described in its privacy policy. I understand I may withdraw this consent at any time by contacting the business, "+
				"and that withdrawal does not affect processing that occurred before it.", name),
			Customizable: true,
		},
		{
			ID:       "employee_memo",
			Title:    "Employee AI usage memo",
			Audience: "employees",
			Body: fmt.Sprintf("To all staff of %s: AI assistants may only be used with approved tools and for approved purposes. "+
				"Never enter customer health, financial or identity information into an AI tool unless that tool has been explicitly cleared for it. "+
				"When in doubt, ask before you paste. Violations of this policy are treated as privacy incidents.", name),
			Customizable: true,
		},
	}
}
