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

package server_test

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/defra-forms/forms-manager/server"
	"github.com/defra-forms/forms-manager/server/backend"
)

func TestNewConfigFromFile(t *testing.T) {
	t.Run("fail read config file test", func(t *testing.T) {
		conf := server.NewConfig()
		assert.Equal(t, conf.HTTPAddr(), "localhost:"+strconv.Itoa(server.DefaultHTTPPort))
		_, err := server.NewConfigFromFile("nowhere.yml")
		assert.Error(t, err)
		assert.Equal(t, conf.HTTP.Port, server.DefaultHTTPPort)
		assert.Equal(t, conf.Backend.MetadataStore, backend.StoreMemory)
		assert.Equal(t, conf.Backend.DefinitionStore, backend.StoreMemory)
		assert.NoError(t, conf.Validate())
	})

	t.Run("read config file test", func(t *testing.T) {
		filePath := "config.sample.yml"
		conf, err := server.NewConfigFromFile(filePath)
		assert.NoError(t, err)

		assert.Equal(t, conf.HTTP.Port, server.DefaultHTTPPort)
		assert.Equal(t, conf.Backend.MetadataStore, backend.StoreMongo)
		assert.Equal(t, conf.Backend.DefinitionStore, backend.StoreS3)

		connTimeout, err := time.ParseDuration(conf.Mongo.ConnectionTimeout)
		assert.NoError(t, err)
		assert.Equal(t, connTimeout, server.DefaultMongoConnectionTimeout)
		assert.Equal(t, conf.Mongo.ConnectionURI, server.DefaultMongoConnectionURI)
		assert.Equal(t, conf.Mongo.FormsDatabase, server.DefaultMongoFormsDatabase)
		assert.Equal(t, conf.Mongo.CacheSize, server.DefaultMongoCacheSize)

		pingTimeout, err := time.ParseDuration(conf.Mongo.PingTimeout)
		assert.NoError(t, err)
		assert.Equal(t, pingTimeout, server.DefaultMongoPingTimeout)

		assert.Equal(t, "forms-definitions", conf.S3.Bucket)
		assert.Equal(t, server.DefaultS3Region, conf.S3.Region)

		assert.Equal(t, "localhost:9092", conf.Kafka.Addresses)
		assert.Equal(t, server.DefaultKafkaTopic, conf.Kafka.Topic)
		assert.Equal(t, server.DefaultKafkaWriteTimeout.String(), conf.Kafka.WriteTimeout)
		assert.NoError(t, conf.Validate())
	})

	t.Run("default value test", func(t *testing.T) {
		filePath := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(filePath, []byte("HTTP:\n  Port: 4000\n"), 0o600))

		conf, err := server.NewConfigFromFile(filePath)
		require.NoError(t, err)
		assert.Equal(t, 4000, conf.HTTP.Port)
		assert.Equal(t, server.DefaultHTTPReadTimeout.String(), conf.HTTP.ReadTimeout)
		assert.Equal(t, int64(server.DefaultHTTPMaxRequestBytes), conf.HTTP.MaxRequestBytes)
		assert.Equal(t, server.DefaultDefinitionDirectory, conf.Backend.DefinitionDirectory)
		assert.Nil(t, conf.Profiling)
		assert.Nil(t, conf.Mongo)
		assert.Nil(t, conf.Kafka)
		assert.NoError(t, conf.Validate())
	})

	t.Run("missing store config test", func(t *testing.T) {
		conf := server.NewConfig()
		conf.Backend.MetadataStore = backend.StoreMongo
		assert.ErrorIs(t, conf.Validate(), backend.ErrMissingStoreConfig)

		conf = server.NewConfig()
		conf.Backend.DefinitionStore = backend.StoreS3
		assert.ErrorIs(t, conf.Validate(), backend.ErrMissingStoreConfig)
	})
}
