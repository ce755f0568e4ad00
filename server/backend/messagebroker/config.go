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

package messagebroker

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"
)

var (
	// ErrEmptyAddress is returned when a broker address is empty.
	ErrEmptyAddress = errors.New("kafka address cannot be empty")

	// ErrInvalidAddress is returned when a broker address is not host:port.
	ErrInvalidAddress = errors.New("invalid kafka address")

	// ErrEmptyTopic is returned when the topic of form events is empty.
	ErrEmptyTopic = errors.New("kafka topic cannot be empty")

	// ErrInvalidDuration is returned when the write timeout is not a duration.
	ErrInvalidDuration = errors.New("invalid duration")
)

// Config is the configuration of the Kafka broker form events are published to.
type Config struct {
	// Addresses is the comma-separated list of Kafka brokers.
	Addresses string `yaml:"Addresses"`

	// Topic is the topic form events are written to.
	Topic string `yaml:"Topic"`

	// WriteTimeout is the timeout of writing a batch of events.
	WriteTimeout string `yaml:"WriteTimeout"`
}

// Validate checks that every broker address is host:port, that the topic is
// given and that the write timeout is a duration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addresses) == "" {
		return fmt.Errorf(`"--kafka-addresses" flag: %w`, ErrEmptyAddress)
	}

	for _, addr := range c.SplitAddresses() {
		if addr == "" {
			return fmt.Errorf(`%q: %w`, c.Addresses, ErrEmptyAddress)
		}

		if _, _, err := net.SplitHostPort(addr); err != nil {
			return fmt.Errorf(`%q: %w: %w`, addr, ErrInvalidAddress, err)
		}
	}

	if c.Topic == "" {
		return fmt.Errorf(`"--kafka-topic" flag: %w`, ErrEmptyTopic)
	}

	if _, err := time.ParseDuration(c.WriteTimeout); err != nil {
		return fmt.Errorf(
			`invalid argument "%s" for "--kafka-write-timeout" flag: %w`,
			c.WriteTimeout,
			ErrInvalidDuration,
		)
	}

	return nil
}

// SplitAddresses returns the broker addresses without surrounding spaces.
func (c *Config) SplitAddresses() []string {
	addrs := strings.Split(c.Addresses, ",")
	for i, addr := range addrs {
		addrs[i] = strings.TrimSpace(addr)
	}

	return addrs
}

// MustParseWriteTimeout parses the write timeout. It panics when the config
// has not been validated.
func (c *Config) MustParseWriteTimeout() time.Duration {
	timeout, err := time.ParseDuration(c.WriteTimeout)
	if err != nil {
		panic(ErrInvalidDuration)
	}

	return timeout
}
