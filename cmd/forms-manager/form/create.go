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

package form

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/defra-forms/forms-manager/api/types"
	"github.com/defra-forms/forms-manager/cmd/forms-manager/config"
)

var fields types.CreateFormFields

func newCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "create [title]",
		Short:   "Create a form from the empty template",
		Example: `forms-manager form create "Apply for a licence" --organisation Defra --team-name Forms --team-email forms@example.com`,
		PreRunE: config.Preload,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			fields.Title = args[0]

			cli, err := config.NewClient()
			if err != nil {
				return err
			}

			id, err := cli.CreateForm(context.Background(), &fields)
			if err != nil {
				return err
			}

			output := viper.GetString("output")
			if output == "" {
				cmd.Printf("created form %s\n", id)
				return nil
			}
			return printValue(cmd, output, types.FormStatusResponse{
				ID:     id,
				Status: types.StatusCreated,
			})
		},
	}
}

func init() {
	cmd := newCreateCommand()
	cmd.Flags().StringVar(
		&fields.Organisation,
		"organisation",
		"",
		"Organisation the form belongs to",
	)
	cmd.Flags().StringVar(
		&fields.TeamName,
		"team-name",
		"",
		"Name of the team who owns the form",
	)
	cmd.Flags().StringVar(
		&fields.TeamEmail,
		"team-email",
		"",
		"Email of the team who owns the form",
	)
	SubCmd.AddCommand(cmd)
}
