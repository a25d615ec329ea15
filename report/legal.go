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
	"github.com/maplerisk/maplerisk/catalog"
	"github.com/maplerisk/maplerisk/dtos"
	"github.com/maplerisk/maplerisk/utils"
)

// Policy thresholds, not legal requirements. Tuned alongside the catalogs.
const (
	billC27SafeguardThreshold    = 3
	provincialSafeguardThreshold = 2
)

func legalCompliance(profile dtos.BusinessProfile) dtos.LegalCompliance {
	return dtos.LegalCompliance{
		PIPEDAStatus:     pipedaStatus(profile),
		BillC27Status:    billC27Status(profile),
		ProvincialStatus: provincialStatus(profile),
	}
}

// pipedaStatus requires both a consent process and AI disclosure in the
// privacy policy, PIPEDA's two pillars for third-party processing.
func pipedaStatus(profile dtos.BusinessProfile) dtos.ComplianceStatus {
	compliant := utils.ContainsAll(profile.Safeguards, []string{
		catalog.SafeguardCustomerConsent,
		catalog.SafeguardAIPrivacyPolicy,
	})

	status := dtos.ComplianceStatus{
		Regulation: "PIPEDA",
		Compliant:  compliant,
	}
	if !compliant {
		status.Issues = append(status.Issues, dtos.ComplianceIssue{
			Regulation:  "PIPEDA",
			Severity:    dtos.RiskLevelHigh,
			Description: "Personal information is processed by AI tools without documented consent and disclosure.",
			Remediation: "Establish a consent process for customer data and disclose AI processing in your privacy policy.",
			Resources: []string{
				"https://www.priv.gc.ca/en/privacy-topics/privacy-laws-in-canada/the-personal-information-protection-and-electronic-documents-act-pipeda/",
				"https://www.priv.gc.ca/en/privacy-topics/technology/artificial-intelligence/",
			},
		})
	}
	return status
}

func billC27Status(profile dtos.BusinessProfile) dtos.ComplianceStatus {
	prepared := len(profile.Safeguards) >= billC27SafeguardThreshold

	status := dtos.ComplianceStatus{
		Regulation: "Bill C-27 (CPPA / AIDA)",
		Compliant:  prepared,
	}
	if !prepared {
		status.Issues = append(status.Issues, dtos.ComplianceIssue{
			Regulation:  "Bill C-27",
			Severity:    dtos.RiskLevelMedium,
			Description: "Too few safeguards in place to be considered prepared for the incoming federal AI and privacy reform.",
			Remediation: "Adopt additional safeguards - staff training, vendor assessments and access controls carry the most weight.",
			Resources: []string{
				"https://ised-isde.canada.ca/site/innovation-better-canada/en/canadas-digital-charter-trust-digital-world",
			},
		})
	}
	return status
}

// provincialStatus applies the safeguard-count rule, Quebec additionally gets
// the privacy-officer requirement regardless of other safeguards.
func provincialStatus(profile dtos.BusinessProfile) dtos.ComplianceStatus {
	province, known := catalog.ProvinceByCode(profile.ProvinceCode)

	regulation := "PIPEDA"
	if known && province.HasProvincialLaw {
		regulation = province.PrivacyStatute
	}

	status := dtos.ComplianceStatus{
		Regulation: regulation,
		Compliant:  len(profile.Safeguards) >= provincialSafeguardThreshold,
	}
	if !status.Compliant {
		status.Issues = append(status.Issues, dtos.ComplianceIssue{
			Regulation:  regulation,
			Severity:    dtos.RiskLevelMedium,
			Description: "Current safeguards fall short of what provincial regulators expect for AI data processing.",
			Remediation: "Put at least a consent process and an AI disclosure in place before expanding AI usage.",
			Resources:   []string{},
		})
	}

	if profile.ProvinceCode == "QC" {
		status.Issues = append(status.Issues, dtos.ComplianceIssue{
			Regulation:  "Law 25",
			Severity:    dtos.RiskLevelHigh,
			Description: "Law 25 requires every Quebec business to designate a person in charge of the protection of personal information (privacy officer).",
			Remediation: "Designate a privacy officer and publish their title and contact information on your website.",
			Resources: []string{
				"https://www.cai.gouv.qc.ca/entreprises/loi-25/",
			},
		})
	}

	return status
}
