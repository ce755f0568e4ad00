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

// Package memory implements the database interface using in-memory database.
package memory

import (
	"context"
	"fmt"
	gotime "time"

	"github.com/hashicorp/go-memdb"

	"github.com/defra-forms/forms-manager/server/backend/database"
)

// DB is an in-memory database for testing or temporarily.
type DB struct {
	db *memdb.MemDB
}

// New returns a new in-memory database.
func New() (*DB, error) {
	memDB, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("new memdb: %w", err)
	}

	return &DB{
		db: memDB,
	}, nil
}

// Close closes the database.
func (d *DB) Close() error {
	return nil
}

// FormInfoExists returns whether a form with the given id exists.
func (d *DB) FormInfoExists(_ context.Context, id string) (bool, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tblForms, "id", id)
	if err != nil {
		return false, fmt.Errorf("find form %s: %w", id, err)
	}

	return raw != nil, nil
}

// CreateFormInfo creates a new form record.
func (d *DB) CreateFormInfo(_ context.Context, info *database.FormInfo) (*database.FormInfo, error) {
	txn := d.db.Txn(true)
	defer txn.Abort()

	// go-memdb replaces the object on a unique index conflict.
	// https://github.com/hashicorp/go-memdb/issues/7#issuecomment-270427642
	existing, err := txn.First(tblForms, "id", info.ID)
	if err != nil {
		return nil, fmt.Errorf("create form %s: %w", info.ID, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("create form %s: %w", info.ID, database.ErrFormInfoAlreadyExists)
	}

	created := info.DeepCopy()
	if created.CreatedAt.IsZero() {
		created.CreatedAt = gotime.Now()
	}
	if err := txn.Insert(tblForms, created); err != nil {
		return nil, fmt.Errorf("create form %s: %w", info.ID, err)
	}

	txn.Commit()
	return created.DeepCopy(), nil
}

// FindFormInfoByID returns the form of the given id.
func (d *DB) FindFormInfoByID(_ context.Context, id string) (*database.FormInfo, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tblForms, "id", id)
	if err != nil {
		return nil, fmt.Errorf("find form %s: %w", id, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("find form %s: %w", id, database.ErrFormInfoNotFound)
	}

	return raw.(*database.FormInfo).DeepCopy(), nil
}

// ListFormInfos returns all forms in the order of their ids.
func (d *DB) ListFormInfos(_ context.Context) ([]*database.FormInfo, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	iter, err := txn.Get(tblForms, "id")
	if err != nil {
		return nil, fmt.Errorf("list all forms: %w", err)
	}

	infos := []*database.FormInfo{}
	for raw := iter.Next(); raw != nil; raw = iter.Next() {
		infos = append(infos, raw.(*database.FormInfo).DeepCopy())
	}

	return infos, nil
}
