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
	"sort"

	"github.com/maplerisk/maplerisk/dtos"
)

var priorityRank = map[dtos.ActionPriority]int{
	dtos.ActionPriorityCritical: 0,
	dtos.ActionPriorityHigh:     1,
	dtos.ActionPriorityMedium:   2,
	dtos.ActionPriorityLow:      3,
}

// actionPlan returns the fixed remediation list, ordered by timeline bucket
// and by priority severity within each bucket. Completion flags start false
// and are only ever toggled client-side.
func actionPlan() []dtos.ActionItem {
	items := []dtos.ActionItem{
		{ID: "inventory_ai_tools", Title: "Inventory your AI tools", Description: "List every AI tool in use, who uses it, and what data goes into it.", Priority: dtos.ActionPriorityCritical, TimelineDays: 30},
		{ID: "update_privacy_policy", Title: "Update your privacy policy", Description: "Disclose AI processing, the vendors involved, and how customers can ask questions.", Priority: dtos.ActionPriorityCritical, TimelineDays: 30},
		{ID: "consent_process", Title: "Set up a consent process", Description: "Collect and record consent before customer data reaches AI tools.", Priority: dtos.ActionPriorityHigh, TimelineDays: 30},
		{ID: "staff_guidelines", Title: "Issue staff guidelines", Description: "Tell employees which data categories may never be entered into AI tools.", Priority: dtos.ActionPriorityHigh, TimelineDays: 60},
		{ID: "vendor_review", Title: "Review vendor terms", Description: "Check each AI vendor's training, retention and residency terms, upgrade tiers where needed.", Priority: dtos.ActionPriorityMedium, TimelineDays: 60},
		{ID: "incident_plan", Title: "Write an incident response plan", Description: "Define who does what when an AI vendor reports a breach affecting your data.", Priority: dtos.ActionPriorityMedium, TimelineDays: 90},
		{ID: "annual_review", Title: "Schedule an annual review", Description: "Re-run the assessment yearly and whenever a new AI tool is adopted.", Priority: dtos.ActionPriorityLow, TimelineDays: 90},
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].TimelineDays != items[j].TimelineDays {
			return items[i].TimelineDays < items[j].TimelineDays
		}
		return priorityRank[items[i].Priority] < priorityRank[items[j].Priority]
	})
	return items
}
