/*
 * Copyright 2024 The Forms Manager Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package form provides the form command of the CLI.
package form

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/defra-forms/forms-manager/api/types"
)

var (
	// SubCmd represents the form command
	SubCmd = &cobra.Command{
		Use:   "form",
		Short: "Manage forms",
	}

	errIDRequired = errors.New("form id is required")
)

func printForms(cmd *cobra.Command, output string, forms []*types.FormMetadata) error {
	switch output {
	case "":
		tw := table.NewWriter()
		tw.Style().Options.DrawBorder = false
		tw.Style().Options.SeparateColumns = false
		tw.Style().Options.SeparateFooter = false
		tw.Style().Options.SeparateHeader = false
		tw.Style().Options.SeparateRows = false
		tw.AppendHeader(table.Row{
			"ID",
			"TITLE",
			"ORGANISATION",
			"TEAM NAME",
			"TEAM EMAIL",
		})
		for _, form := range forms {
			tw.AppendRow(table.Row{
				form.ID,
				form.Title,
				form.Organisation,
				form.TeamName,
				form.TeamEmail,
			})
		}
		cmd.Printf("%s\n", tw.Render())
	default:
		return printValue(cmd, output, forms)
	}

	return nil
}

// printValue prints the given value as JSON or YAML.
func printValue(cmd *cobra.Command, output string, v any) error {
	switch output {
	case "", "json":
		jsonOutput, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal JSON: %w", err)
		}
		cmd.Println(string(jsonOutput))
	case "yaml":
		yamlOutput, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal YAML: %w", err)
		}
		cmd.Println(string(yamlOutput))
	default:
		return fmt.Errorf("unknown output format: %s", output)
	}

	return nil
}
