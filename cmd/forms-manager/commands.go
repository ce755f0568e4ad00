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

// Package main is the entry point of the forms manager CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/defra-forms/forms-manager/cmd/forms-manager/config"
	"github.com/defra-forms/forms-manager/cmd/forms-manager/form"
)

var rootCmd = &cobra.Command{
	Use:          "forms-manager",
	Short:        "Manage the lifecycle of forms: create, read and promote to live",
	SilenceUsage: true,
}

// Run executes CLI.
func Run() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}

	return 0
}

func init() {
	rootCmd.AddCommand(form.SubCmd)
	rootCmd.PersistentFlags().StringVar(&config.Addr, "addr", config.DefaultAddr, "Address of the forms manager server")
	rootCmd.PersistentFlags().StringVarP(&config.Output, "output", "o", "", "One of 'yaml' or 'json'.")
}
