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

// Package storage defines the object storage used to keep form definitions.
package storage

import (
	"context"

	"github.com/defra-forms/forms-manager/pkg/errors"
)

// ErrObjectNotFound is returned when no object is stored at the given key.
var ErrObjectNotFound = errors.NotFound("object not found").WithCode("ErrObjectNotFound")

// Client is a key-value object store. Keys are slash-separated paths such as
// "forms/draft/my-form.json".
type Client interface {
	// Put stores the data at the given key, replacing any previous object.
	Put(ctx context.Context, key string, data []byte) error

	// Get returns the data stored at the given key.
	Get(ctx context.Context, key string) ([]byte, error)

	// Copy copies the object at src to dst without reading it locally.
	Copy(ctx context.Context, src, dst string) error
}
