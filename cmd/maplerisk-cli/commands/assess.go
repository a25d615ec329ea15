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

package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/maplerisk/maplerisk/dtos"
	"github.com/maplerisk/maplerisk/report"
	"github.com/maplerisk/maplerisk/risk"
	"github.com/maplerisk/maplerisk/shared"
	"github.com/spf13/cobra"
)

func NewAssessCommand() *cobra.Command {
	assessCmd := cobra.Command{
		Use:   "assess <profile.json>",
		Short: "Derive a risk report from a business profile file",
		Long:  `Reads a business profile from a json file, scores it and prints the derived report. Runs fully offline, nothing is persisted.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("could not read profile file: %w", err)
			}

			var profile dtos.BusinessProfile
			if err := json.Unmarshal(content, &profile); err != nil {
				return fmt.Errorf("could not parse profile: %w", err)
			}

			profile.Normalize()
			if err := shared.V.Struct(profile); err != nil {
				return fmt.Errorf("invalid profile: %w", err)
			}

			score, breakdown := risk.ComputeRiskScore(profile)
			level := risk.LevelForScore(score)
			slog.Info("scored profile", "score", score, "level", level, "safeguardCredit", breakdown.SafeguardCredit)

			reportDTO := report.Derive(profile, score, level)
			reportDTO.ID = uuid.New()
			reportDTO.AssessmentID = uuid.New()
			reportDTO.CreatedAt = time.Now()

			scoreOnly, err := cmd.Flags().GetBool("score-only")
			if err != nil {
				return err
			}
			if scoreOnly {
				fmt.Printf("%d %s\n", score, level)
				return nil
			}

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(reportDTO)
		},
	}

	assessCmd.Flags().Bool("score-only", false, "only print the risk score and level")

	return &assessCmd
}
