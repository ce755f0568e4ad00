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

package server

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/defra-forms/forms-manager/server/backend"
	"github.com/defra-forms/forms-manager/server/backend/database/mongo"
	"github.com/defra-forms/forms-manager/server/backend/messagebroker"
	"github.com/defra-forms/forms-manager/server/backend/storage/s3"
	"github.com/defra-forms/forms-manager/server/profiling"
	"github.com/defra-forms/forms-manager/server/rpc"
)

// Below are the values of the default values of the forms manager config.
const (
	DefaultHTTPPort            = 3000
	DefaultHTTPReadTimeout     = 10 * time.Second
	DefaultHTTPWriteTimeout    = 10 * time.Second
	DefaultHTTPMaxRequestBytes = 1 << 20
	DefaultProfilingPort       = 3001

	DefaultMetadataStore       = backend.StoreMemory
	DefaultDefinitionStore     = backend.StoreMemory
	DefaultDefinitionDirectory = "forms"

	DefaultMongoConnectionURI     = "mongodb://localhost:27017"
	DefaultMongoConnectionTimeout = 5 * time.Second
	DefaultMongoPingTimeout       = 5 * time.Second
	DefaultMongoFormsDatabase     = "forms-manager"
	DefaultMongoCacheSize         = 512

	DefaultS3Region = "eu-west-2"

	DefaultKafkaTopic        = "form-events"
	DefaultKafkaWriteTimeout = 5 * time.Second
)

// Config is the configuration for creating a forms manager instance.
type Config struct {
	HTTP      *rpc.Config           `yaml:"HTTP"`
	Profiling *profiling.Config     `yaml:"Profiling"`
	Backend   *backend.Config       `yaml:"Backend"`
	Mongo     *mongo.Config         `yaml:"Mongo"`
	S3        *s3.Config            `yaml:"S3"`
	Kafka     *messagebroker.Config `yaml:"Kafka"`
}

// NewConfig returns a Config struct that contains reasonable defaults
// for most of the configurations.
func NewConfig() *Config {
	return newConfig(DefaultHTTPPort, DefaultProfilingPort)
}

// NewConfigFromFile returns a Config struct for the given conf file.
func NewConfigFromFile(path string) (*Config, error) {
	conf := &Config{}
	bytes, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err = yaml.Unmarshal(bytes, conf); err != nil {
		return nil, fmt.Errorf("unmarshal config file: %w", err)
	}

	conf.ensureDefaultValue()
	return conf, nil
}

// HTTPAddr returns the address of the HTTP API.
func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("localhost:%d", c.HTTP.Port)
}

// Validate returns an error if the provided Config is invalidated.
func (c *Config) Validate() error {
	if err := c.HTTP.Validate(); err != nil {
		return err
	}

	if c.Profiling != nil {
		if err := c.Profiling.Validate(); err != nil {
			return err
		}
	}

	if err := c.Backend.Validate(); err != nil {
		return err
	}

	if c.Backend.MetadataStore == backend.StoreMongo {
		if c.Mongo == nil {
			return fmt.Errorf("metadata store %s: %w", backend.StoreMongo, backend.ErrMissingStoreConfig)
		}
		if err := c.Mongo.Validate(); err != nil {
			return err
		}
	}

	if c.Backend.DefinitionStore == backend.StoreS3 {
		if c.S3 == nil {
			return fmt.Errorf("definition store %s: %w", backend.StoreS3, backend.ErrMissingStoreConfig)
		}
		if err := c.S3.Validate(); err != nil {
			return err
		}
	}

	if c.Kafka != nil {
		if err := c.Kafka.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// ensureDefaultValue sets the value of the option to which the default value
// should be applied when the user does not input it.
func (c *Config) ensureDefaultValue() {
	if c.HTTP == nil {
		c.HTTP = &rpc.Config{}
	}
	if c.HTTP.Port == 0 {
		c.HTTP.Port = DefaultHTTPPort
	}
	if c.HTTP.ReadTimeout == "" {
		c.HTTP.ReadTimeout = DefaultHTTPReadTimeout.String()
	}
	if c.HTTP.WriteTimeout == "" {
		c.HTTP.WriteTimeout = DefaultHTTPWriteTimeout.String()
	}
	if c.HTTP.MaxRequestBytes == 0 {
		c.HTTP.MaxRequestBytes = DefaultHTTPMaxRequestBytes
	}

	if c.Profiling != nil && c.Profiling.Port == 0 {
		c.Profiling.Port = DefaultProfilingPort
	}

	if c.Backend == nil {
		c.Backend = &backend.Config{}
	}
	if c.Backend.MetadataStore == "" {
		c.Backend.MetadataStore = DefaultMetadataStore
	}
	if c.Backend.DefinitionStore == "" {
		c.Backend.DefinitionStore = DefaultDefinitionStore
	}
	if c.Backend.DefinitionDirectory == "" {
		c.Backend.DefinitionDirectory = DefaultDefinitionDirectory
	}

	if c.Mongo != nil {
		if c.Mongo.ConnectionURI == "" {
			c.Mongo.ConnectionURI = DefaultMongoConnectionURI
		}

		if c.Mongo.ConnectionTimeout == "" {
			c.Mongo.ConnectionTimeout = DefaultMongoConnectionTimeout.String()
		}

		if c.Mongo.FormsDatabase == "" {
			c.Mongo.FormsDatabase = DefaultMongoFormsDatabase
		}

		if c.Mongo.PingTimeout == "" {
			c.Mongo.PingTimeout = DefaultMongoPingTimeout.String()
		}

		if c.Mongo.CacheSize == 0 {
			c.Mongo.CacheSize = DefaultMongoCacheSize
		}
	}

	if c.S3 != nil && c.S3.Region == "" {
		c.S3.Region = DefaultS3Region
	}

	if c.Kafka != nil && c.Kafka.Addresses != "" {
		if c.Kafka.Topic == "" {
			c.Kafka.Topic = DefaultKafkaTopic
		}
		if c.Kafka.WriteTimeout == "" {
			c.Kafka.WriteTimeout = DefaultKafkaWriteTimeout.String()
		}
	}
}

func newConfig(port int, profilingPort int) *Config {
	return &Config{
		HTTP: &rpc.Config{
			Port:            port,
			ReadTimeout:     DefaultHTTPReadTimeout.String(),
			WriteTimeout:    DefaultHTTPWriteTimeout.String(),
			MaxRequestBytes: DefaultHTTPMaxRequestBytes,
		},
		Profiling: &profiling.Config{
			Port: profilingPort,
		},
		Backend: &backend.Config{
			MetadataStore:       DefaultMetadataStore,
			DefinitionStore:     DefaultDefinitionStore,
			DefinitionDirectory: DefaultDefinitionDirectory,
		},
	}
}
