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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/defra-forms/forms-manager/api/types"
	"github.com/defra-forms/forms-manager/cmd/forms-manager/config"
)

var live bool

func newDefinitionCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "definition [form id]",
		Short:   "Print the draft, or live, definition of a form",
		PreRunE: config.Preload,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errIDRequired
			}

			cli, err := config.NewClient()
			if err != nil {
				return err
			}

			var definition types.FormDefinition
			if live {
				definition, err = cli.GetLiveFormDefinition(context.Background(), args[0])
			} else {
				definition, err = cli.GetFormDefinition(context.Background(), args[0])
			}
			if err != nil {
				return err
			}

			return printValue(cmd, viper.GetString("output"), definition)
		},
	}
}

func init() {
	cmd := newDefinitionCommand()
	cmd.Flags().BoolVar(
		&live,
		"live",
		false,
		"Print the live definition instead of the draft",
	)
	SubCmd.AddCommand(cmd)
}
