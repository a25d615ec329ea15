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
	"os"
	"time"

	"github.com/maplerisk/maplerisk/scan"
	"github.com/spf13/cobra"
)

func NewScanCommand() *cobra.Command {
	scanCmd := cobra.Command{
		Use:   "scan <url>",
		Short: "Scan a website for AI usage signals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			timeout, err := cmd.Flags().GetDuration("timeout")
			if err != nil {
				return err
			}

			scanner := scan.NewScanner(timeout)
			result, err := scanner.Scan(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}

			asDraft, err := cmd.Flags().GetBool("draft-profile")
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if asDraft {
				return encoder.Encode(scan.ToDraftProfile(result))
			}
			return encoder.Encode(result)
		},
	}

	scanCmd.Flags().Duration("timeout", 15*time.Second, "http timeout for the scan")
	scanCmd.Flags().Bool("draft-profile", false, "print the draft business profile instead of the raw scan result")

	return &scanCmd
}
