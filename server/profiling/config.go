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

// Package profiling provides the server exposing the metrics of the forms
// manager and, when enabled, its pprof profiles.
package profiling

import (
	"errors"
	"fmt"
)

// ErrInvalidProfilingPort occurs when the port in the config is invalid.
var ErrInvalidProfilingPort = errors.New("invalid port number for profiling server")

// Config is the configuration of the profiling server.
type Config struct {
	// Port is the port /metrics and /debug/pprof are served on.
	Port int `yaml:"Port"`

	// EnablePprof serves the pprof profiles under /debug/pprof.
	EnablePprof bool `yaml:"EnablePprof"`
}

// Validate validates the port number.
func (c *Config) Validate() error {
	if c.Port < 1 || 65535 < c.Port {
		return fmt.Errorf(
			`invalid argument "%d" for "--profiling-port" flag: %w`,
			c.Port,
			ErrInvalidProfilingPort,
		)
	}

	return nil
}

// Addr returns the address the profiling server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
