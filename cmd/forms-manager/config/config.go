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

// Package config provides the configuration of the CLI commands talking to
// a running server.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/defra-forms/forms-manager/client"
)

const (
	// EnvPrefix is the prefix of the environment variables read by the CLI.
	EnvPrefix = "FORMS_MANAGER"

	// DefaultAddr is the address of the server when none is given.
	DefaultAddr = "localhost:3000"

	defaultTimeout = 30 * time.Second
)

// ErrInvalidOutput is returned when the output format is unknown.
var ErrInvalidOutput = errors.New("--output must be 'yaml' or 'json'")

var (
	// Addr is the address of the server.
	Addr string
	// Output is the output format of the commands.
	Output string
)

// Preload binds the flags of the given command and the environment to
// viper. FORMS_MANAGER_ADDR is used when --addr is not given.
func Preload(cmd *cobra.Command, _ []string) error {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	for _, name := range []string{"addr", "output"} {
		if flag := cmd.Flags().Lookup(name); flag != nil {
			if err := viper.BindPFlag(name, flag); err != nil {
				return fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	return ValidateOutput(viper.GetString("output"))
}

// ValidateOutput validates the given output format.
func ValidateOutput(output string) error {
	if output != "" && output != "yaml" && output != "json" {
		return ErrInvalidOutput
	}
	return nil
}

// NewClient creates a client of the server at the bound address.
func NewClient() (*client.Client, error) {
	addr := viper.GetString("addr")
	if addr == "" {
		addr = DefaultAddr
	}
	return client.New(addr, client.WithTimeout(defaultTimeout))
}
