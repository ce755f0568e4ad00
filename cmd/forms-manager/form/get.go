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

func newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "get [form id]",
		Short:   "Get the metadata of a form",
		PreRunE: config.Preload,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errIDRequired
			}

			cli, err := config.NewClient()
			if err != nil {
				return err
			}

			form, err := cli.GetForm(context.Background(), args[0])
			if err != nil {
				return err
			}

			return printForms(cmd, viper.GetString("output"), []*types.FormMetadata{form})
		},
	}
}

func init() {
	SubCmd.AddCommand(newGetCommand())
}
