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

	"github.com/defra-forms/forms-manager/cmd/forms-manager/config"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Short:   "List all forms",
		PreRunE: config.Preload,
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := config.NewClient()
			if err != nil {
				return err
			}

			forms, err := cli.ListForms(context.Background())
			if err != nil {
				return err
			}

			return printForms(cmd, viper.GetString("output"), forms)
		},
	}
}

func init() {
	SubCmd.AddCommand(newListCommand())
}
