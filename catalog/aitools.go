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

// AITools lists the vendors the wizard offers. Base risk reflects the consumer
// tier, UsesDataForTraining the vendor's default retention behaviour on that
// tier.
var AITools = []AITool{
	{ID: "chatgpt", Name: "ChatGPT", Category: "general_assistant", BaseRiskScore: 6.5, UsesDataForTraining: true, DataResidency: ResidencyUS, HasEnterpriseTier: true},
	{ID: "claude", Name: "Claude", Category: "general_assistant", BaseRiskScore: 6.0, UsesDataForTraining: false, DataResidency: ResidencyUS, HasEnterpriseTier: true},
	{ID: "gemini", Name: "Gemini", Category: "general_assistant", BaseRiskScore: 6.0, UsesDataForTraining: true, DataResidency: ResidencyUS, HasEnterpriseTier: true},
	{ID: "microsoft_copilot", Name: "Microsoft Copilot", Category: "office_suite", BaseRiskScore: 5.5, UsesDataForTraining: false, DataResidency: ResidencyUS, HasEnterpriseTier: true},
	{ID: "otter_ai", Name: "Otter.ai", Category: "meeting_transcription", BaseRiskScore: 5.5, UsesDataForTraining: true, DataResidency: ResidencyUS, HasEnterpriseTier: false},
	{ID: "grammarly", Name: "Grammarly", Category: "writing_assistant", BaseRiskScore: 5.0, UsesDataForTraining: true, DataResidency: ResidencyUS, HasEnterpriseTier: true},
	{ID: "jasper", Name: "Jasper", Category: "marketing_copy", BaseRiskScore: 4.5, UsesDataForTraining: false, DataResidency: ResidencyUS, HasEnterpriseTier: true},
	{ID: "midjourney", Name: "Midjourney", Category: "image_generation", BaseRiskScore: 4.5, UsesDataForTraining: true, DataResidency: ResidencyUS, HasEnterpriseTier: false},
	{ID: "canva_magic", Name: "Canva Magic Studio", Category: "design", BaseRiskScore: 4.0, UsesDataForTraining: false, DataResidency: ResidencyUnknown, HasEnterpriseTier: true},
	{ID: "cohere", Name: "Cohere", Category: "api_platform", BaseRiskScore: 4.0, UsesDataForTraining: false, DataResidency: ResidencyCanada, HasEnterpriseTier: true},
}

// CrossBorderTool reports whether submitted data leaves Canada for this tool.
// Unknown identifiers are treated as not cross-border, consistent with their
// zero risk contribution.
func CrossBorderTool(id string) bool {
	tool, ok := aiToolByID[id]
	if !ok {
		return false
	}
	return tool.DataResidency != ResidencyCanada
}
