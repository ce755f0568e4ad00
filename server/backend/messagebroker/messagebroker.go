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

// Package messagebroker provides the message broker that form events are
// published to.
package messagebroker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/defra-forms/forms-manager/server/logging"
)

// FormEventType is the type of a form event.
type FormEventType string

const (
	// FormCreatedEvent is published when a form has been created.
	FormCreatedEvent FormEventType = "FormCreated"

	// FormPromotedEvent is published when the draft definition of a form has
	// been promoted to live.
	FormPromotedEvent FormEventType = "FormPromoted"
)

// Message represents a message that can be sent to the message broker.
type Message interface {
	Key() []byte
	Marshal() ([]byte, error)
}

// FormEventMessage represents a message for form events.
type FormEventMessage struct {
	FormID    string        `json:"form_id"`
	EventType FormEventType `json:"event_type"`
	Timestamp time.Time     `json:"timestamp"`
}

// Key returns the id of the form the event is about.
func (m FormEventMessage) Key() []byte {
	return []byte(m.FormID)
}

// Marshal marshals the form event message to JSON.
func (m FormEventMessage) Marshal() ([]byte, error) {
	encoded, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}

	return encoded, nil
}

// Broker is an interface for the message broker.
type Broker interface {
	Produce(ctx context.Context, msg Message) error
	Close() error
}

// DiscardBroker drops every event. It stands in for Kafka when no broker is
// configured.
type DiscardBroker struct{}

// Produce drops the event.
func (DiscardBroker) Produce(ctx context.Context, msg Message) error {
	logging.From(ctx).Debugf("discard form event %s", msg.Key())
	return nil
}

// Close does nothing.
func (DiscardBroker) Close() error {
	return nil
}

// Ensure creates the broker of the given configuration. A nil or invalid
// configuration gives a DiscardBroker, so callers never check for nil.
func Ensure(kafkaConf *Config) Broker {
	if kafkaConf == nil {
		return DiscardBroker{}
	}

	if err := kafkaConf.Validate(); err != nil {
		logging.DefaultLogger().Warnf("invalid kafka configuration, form events are discarded: %v", err)
		return DiscardBroker{}
	}

	logging.DefaultLogger().Infof(
		"publishing form events to kafka: %s, topic: %s",
		kafkaConf.Addresses,
		kafkaConf.Topic,
	)

	return newKafkaBroker(kafkaConf)
}
