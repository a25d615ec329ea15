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

	"github.com/maplerisk/maplerisk/catalog"
	"github.com/spf13/cobra"
)

func NewCatalogsCommand() *cobra.Command {
	catalogsCmd := cobra.Command{
		Use:   "catalogs [industries|provinces|ai-tools|data-types|safeguards]",
		Short: "Print the option catalogs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")

			if len(args) == 0 {
				return encoder.Encode(map[string]any{
					"industries": catalog.Industries,
					"provinces":  catalog.Provinces,
					"aiTools":    catalog.AITools,
					"dataTypes":  catalog.DataTypes,
					"safeguards": catalog.Safeguards,
				})
			}

			switch args[0] {
			case "industries":
				return encoder.Encode(catalog.Industries)
			case "provinces":
				return encoder.Encode(catalog.Provinces)
			case "ai-tools":
				return encoder.Encode(catalog.AITools)
			case "data-types":
				return encoder.Encode(catalog.DataTypes)
			case "safeguards":
				return encoder.Encode(catalog.Safeguards)
			default:
				return fmt.Errorf("unknown catalog %q", args[0])
			}
		},
	}

	return &catalogsCmd
}
