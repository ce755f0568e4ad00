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

// Package database provides the database interface for the metadata records
// of forms.
package database

import (
	"context"

	"github.com/defra-forms/forms-manager/pkg/errors"
)

var (
	// ErrFormInfoNotFound is returned when the form could not be found.
	ErrFormInfoNotFound = errors.NotFound("form not found").WithCode("ErrFormInfoNotFound")

	// ErrFormInfoAlreadyExists is returned when the form already exists.
	ErrFormInfoAlreadyExists = errors.AlreadyExists("form already exists").WithCode("ErrFormInfoAlreadyExists")
)

// Database represents database which reads or saves the metadata of forms.
type Database interface {
	// Close all resources of this database.
	Close() error

	// FormInfoExists returns whether a form with the given id exists. A
	// missing form is not an error.
	FormInfoExists(ctx context.Context, id string) (bool, error)

	// CreateFormInfo creates a new form record.
	CreateFormInfo(ctx context.Context, info *FormInfo) (*FormInfo, error)

	// FindFormInfoByID returns the form of the given id.
	FindFormInfoByID(ctx context.Context, id string) (*FormInfo, error)

	// ListFormInfos returns all forms.
	ListFormInfos(ctx context.Context) ([]*FormInfo, error)
}
