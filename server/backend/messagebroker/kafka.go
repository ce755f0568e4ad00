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
	"context"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/defra-forms/forms-manager/server/logging"
)

// KafkaBroker publishes form events to a Kafka topic. Events are keyed by form
// id, so the events of one form land on one partition in order.
type KafkaBroker struct {
	writer *kafka.Writer
}

func newKafkaBroker(conf *Config) *KafkaBroker {
	topic := conf.Topic

	return &KafkaBroker{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(conf.SplitAddresses()...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			WriteTimeout: conf.MustParseWriteTimeout(),
			Async:        true,
			Completion:   func(messages []kafka.Message, err error) {
				if err == nil {
					return
				}

				for _, msg := range messages {
					logging.DefaultLogger().Errorf(
						"deliver event of form %s to %s: %v",
						msg.Key,
						topic,
						err,
					)
				}
			},
		},
	}
}

// Produce queues the event for delivery. Delivery failures are logged when
// the batch completes.
func (mb *KafkaBroker) Produce(ctx context.Context, msg Message) error {
	value, err := msg.Marshal()
	if err != nil {
		return fmt.Errorf("marshal form event: %w", err)
	}

	if err := mb.writer.WriteMessages(ctx, kafka.Message{
		Key:   msg.Key(),
		Value: value,
	}); err != nil {
		return fmt.Errorf("produce form event: %w", err)
	}

	return nil
}

// Close flushes queued events and closes the writer.
func (mb *KafkaBroker) Close() error {
	if err := mb.writer.Close(); err != nil {
		return fmt.Errorf("close kafka writer: %w", err)
	}

	return nil
}
