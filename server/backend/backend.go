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

// Package backend provides the backend of the forms manager. It owns the
// metadata database, the definition store and the metrics that the form
// lifecycle service works with.
package backend

import (
	"context"
	"errors"
	"fmt"

	"github.com/defra-forms/forms-manager/server/backend/database"
	"github.com/defra-forms/forms-manager/server/backend/database/filesystem"
	memdb "github.com/defra-forms/forms-manager/server/backend/database/memory"
	"github.com/defra-forms/forms-manager/server/backend/database/mongo"
	"github.com/defra-forms/forms-manager/server/backend/definitions"
	"github.com/defra-forms/forms-manager/server/backend/messagebroker"
	"github.com/defra-forms/forms-manager/server/backend/storage"
	"github.com/defra-forms/forms-manager/server/backend/storage/billy"
	"github.com/defra-forms/forms-manager/server/backend/storage/s3"
	"github.com/defra-forms/forms-manager/server/logging"
	"github.com/defra-forms/forms-manager/server/profiling/prometheus"
)

// ErrMissingStoreConfig is returned when the config of a selected store is not
// given.
var ErrMissingStoreConfig = errors.New("missing store config")

// Backend manages the stores of the forms manager: the database of form
// metadata and the store of form definitions.
type Backend struct {
	Config *Config

	// DB is the database of form metadata.
	DB database.Database
	// Definitions is the store of draft and live form definitions.
	Definitions *definitions.Store

	// MsgBroker is used to publish form events.
	MsgBroker messagebroker.Broker

	// Metrics is used to expose metrics.
	Metrics *prometheus.Metrics
}

// New creates a new instance of Backend. mongoConf and s3Conf are only
// required when the corresponding store is selected. Form events are dropped
// when kafkaConf is nil.
func New(
	ctx context.Context,
	conf *Config,
	mongoConf *mongo.Config,
	s3Conf *s3.Config,
	kafkaConf *messagebroker.Config,
	metrics *prometheus.Metrics,
) (*Backend, error) {
	// 01. Create the storage client of form definitions.
	var client storage.Client
	switch conf.DefinitionStore {
	case StoreS3:
		if s3Conf == nil {
			return nil, fmt.Errorf("definition store %s: %w", conf.DefinitionStore, ErrMissingStoreConfig)
		}
		s3Client, err := s3.Dial(ctx, s3Conf)
		if err != nil {
			return nil, err
		}
		client = s3Client
	case StoreFilesystem:
		client = billy.NewOS(conf.DefinitionFilesystemRoot)
	default:
		client = billy.NewInMemory()
	}

	// 02. Create the database of form metadata.
	var db database.Database
	var err error
	switch conf.MetadataStore {
	case StoreMongo:
		if mongoConf == nil {
			return nil, fmt.Errorf("metadata store %s: %w", conf.MetadataStore, ErrMissingStoreConfig)
		}
		db, err = mongo.Dial(mongoConf)
	case StoreFilesystem:
		db, err = filesystem.Dial(conf.MetadataDirectory)
	default:
		db, err = memdb.New()
	}
	if err != nil {
		return nil, err
	}

	// 03. Create the message broker of form events.
	broker := messagebroker.Ensure(kafkaConf)

	logging.DefaultLogger().Infof(
		"backend created: metadata: %s, definitions: %s",
		conf.MetadataStore,
		conf.DefinitionStore,
	)

	return &Backend{
		Config:      conf,
		DB:          db,
		Definitions: definitions.New(client, conf.DefinitionDirectory),
		MsgBroker:   broker,
		Metrics:     metrics,
	}, nil
}

// Shutdown closes all resources of this instance.
func (b *Backend) Shutdown() error {
	if err := b.MsgBroker.Close(); err != nil {
		logging.DefaultLogger().Error(err)
	}

	if err := b.DB.Close(); err != nil {
		return err
	}

	logging.DefaultLogger().Infof("backend stopped")
	return nil
}
