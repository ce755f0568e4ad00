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

// Package filesystem implements the database interface on a directory: every
// form is kept as a "{id}-metadata.json" file.
package filesystem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	gotime "time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/defra-forms/forms-manager/server/backend/database"
	"github.com/defra-forms/forms-manager/server/logging"
)

const (
	// metadataSuffix is the suffix of the name of every record file.
	metadataSuffix = "-metadata.json"

	dirPerm  = 0o755
	filePerm = 0o644
)

// DB is a database keeping form records as files of a filesystem.
type DB struct {
	fs billy.Filesystem
}

// New returns a new database on the given filesystem.
func New(fs billy.Filesystem) *DB {
	return &DB{fs: fs}
}

// Dial returns a new database on the given directory of the local disk. The
// directory is created if it does not exist.
func Dial(dir string) (*DB, error) {
	fs := osfs.New(dir)
	if err := fs.MkdirAll(".", dirPerm); err != nil {
		return nil, fmt.Errorf("create metadata directory %s: %w", dir, err)
	}

	logging.DefaultLogger().Infof("filesystem metadata store opened, dir: %s", dir)

	return New(fs), nil
}

// Close closes the database.
func (d *DB) Close() error {
	return nil
}

// FormInfoExists returns whether a form with the given id exists.
func (d *DB) FormInfoExists(_ context.Context, id string) (bool, error) {
	_, err := d.fs.Stat(filename(id))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat form %s: %w", id, err)
	}

	return true, nil
}

// CreateFormInfo writes the form record. A record with the same id is
// overwritten.
func (d *DB) CreateFormInfo(_ context.Context, info *database.FormInfo) (*database.FormInfo, error) {
	created := info.DeepCopy()
	if created.CreatedAt.IsZero() {
		created.CreatedAt = gotime.Now()
	}

	data, err := json.Marshal(created)
	if err != nil {
		return nil, fmt.Errorf("marshal form %s: %w", info.ID, err)
	}
	if err := util.WriteFile(d.fs, filename(info.ID), data, filePerm); err != nil {
		return nil, fmt.Errorf("create form %s: %w", info.ID, err)
	}

	return created, nil
}

// FindFormInfoByID returns the form of the given id.
func (d *DB) FindFormInfoByID(_ context.Context, id string) (*database.FormInfo, error) {
	data, err := util.ReadFile(d.fs, filename(id))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("find form %s: %w", id, database.ErrFormInfoNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find form %s: %w", id, err)
	}

	info := &database.FormInfo{}
	if err := json.Unmarshal(data, info); err != nil {
		return nil, fmt.Errorf("decode form %s: %w", id, err)
	}

	return info, nil
}

// ListFormInfos returns all forms in the order of the directory listing.
// Directories, files without the metadata suffix and files that are not a
// form record are skipped.
func (d *DB) ListFormInfos(ctx context.Context) ([]*database.FormInfo, error) {
	entries, err := d.fs.ReadDir(".")
	if errors.Is(err, os.ErrNotExist) {
		return []*database.FormInfo{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list forms: %w", err)
	}

	infos := []*database.FormInfo{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), metadataSuffix) {
			continue
		}

		data, err := util.ReadFile(d.fs, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("list forms: %w", err)
		}

		info := &database.FormInfo{}
		if err := json.Unmarshal(data, info); err != nil || info.ID == "" {
			logging.From(ctx).Warnf("skip malformed form record %s", entry.Name())
			continue
		}

		infos = append(infos, info)
	}

	return infos, nil
}

func filename(id string) string {
	return id + metadataSuffix
}
