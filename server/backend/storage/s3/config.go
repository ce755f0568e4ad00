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

package s3

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyBucket is returned when the bucket is not set.
	ErrEmptyBucket = errors.New("bucket cannot be empty")
)

// Config is the configuration for creating an S3 storage client.
type Config struct {
	// Bucket is the name of the bucket keeping form definitions.
	Bucket string `yaml:"Bucket"`

	// Region is the AWS region of the bucket.
	Region string `yaml:"Region"`

	// Endpoint overrides the S3 endpoint, e.g. for LocalStack or MinIO.
	Endpoint string `yaml:"Endpoint"`

	// ForcePathStyle addresses the bucket in the path instead of the host.
	ForcePathStyle bool `yaml:"ForcePathStyle"`
}

// Validate returns an error if the provided Config is invalidated.
func (c *Config) Validate() error {
	if c.Bucket == "" {
		return fmt.Errorf(`invalid argument "%s" for "--s3-bucket" flag: %w`, c.Bucket, ErrEmptyBucket)
	}

	return nil
}
