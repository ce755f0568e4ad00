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

package backend

import (
	"errors"
	"fmt"
)

const (
	// StoreMemory keeps data in memory. It is lost on shutdown.
	StoreMemory = "memory"

	// StoreFilesystem keeps data as files on the local disk.
	StoreFilesystem = "filesystem"

	// StoreMongo keeps form metadata in MongoDB.
	StoreMongo = "mongo"

	// StoreS3 keeps form definitions in an S3 bucket.
	StoreS3 = "s3"
)

var (
	// ErrInvalidStore is returned when a store of the config is unknown.
	ErrInvalidStore = errors.New("invalid store")

	// ErrEmptyDirectory is returned when a required directory is not set.
	ErrEmptyDirectory = errors.New("directory cannot be empty")
)

// Config is the configuration for creating a Backend instance.
type Config struct {
	// MetadataStore is the store of form metadata: "memory", "mongo" or
	// "filesystem". Default is "memory".
	MetadataStore string `yaml:"MetadataStore"`

	// MetadataDirectory is the directory of the filesystem metadata store.
	MetadataDirectory string `yaml:"MetadataDirectory"`

	// DefinitionStore is the store of form definitions: "memory",
	// "filesystem" or "s3". Default is "memory".
	DefinitionStore string `yaml:"DefinitionStore"`

	// DefinitionFilesystemRoot is the local directory of the filesystem
	// definition store.
	DefinitionFilesystemRoot string `yaml:"DefinitionFilesystemRoot"`

	// DefinitionDirectory is the directory, or key prefix, under which draft
	// and live definitions are kept. Default is "forms".
	DefinitionDirectory string `yaml:"DefinitionDirectory"`
}

// Validate validates this config.
func (c *Config) Validate() error {
	switch c.MetadataStore {
	case StoreMemory, StoreMongo:
	case StoreFilesystem:
		if c.MetadataDirectory == "" {
			return fmt.Errorf(
				`invalid argument "" for "--metadata-dir" flag: %w`,
				ErrEmptyDirectory,
			)
		}
	default:
		return fmt.Errorf(
			`invalid argument "%s" for "--metadata-store" flag: %w`,
			c.MetadataStore,
			ErrInvalidStore,
		)
	}

	switch c.DefinitionStore {
	case StoreMemory, StoreS3:
	case StoreFilesystem:
		if c.DefinitionFilesystemRoot == "" {
			return fmt.Errorf(
				`invalid argument "" for "--definition-root" flag: %w`,
				ErrEmptyDirectory,
			)
		}
	default:
		return fmt.Errorf(
			`invalid argument "%s" for "--definition-store" flag: %w`,
			c.DefinitionStore,
			ErrInvalidStore,
		)
	}

	if c.DefinitionDirectory == "" {
		return fmt.Errorf(
			`invalid argument "" for "--definition-dir" flag: %w`,
			ErrEmptyDirectory,
		)
	}

	return nil
}
