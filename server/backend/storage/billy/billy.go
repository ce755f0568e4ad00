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

// Package billy implements the storage client on top of a go-billy
// filesystem: the local disk in production and memory in tests.
package billy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/defra-forms/forms-manager/server/backend/storage"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Client is a storage client keeping every object as a file.
type Client struct {
	fs billy.Filesystem
}

// New creates a new client on the given filesystem.
func New(fs billy.Filesystem) *Client {
	return &Client{fs: fs}
}

// NewOS creates a new client on the local disk, rooted at the given directory.
func NewOS(root string) *Client {
	return New(osfs.New(root))
}

// NewInMemory creates a new client on an in-memory filesystem.
func NewInMemory() *Client {
	return New(memfs.New())
}

// Filesystem returns the underlying filesystem.
func (c *Client) Filesystem() billy.Filesystem {
	return c.fs
}

// Put stores the data at the given key, creating parent directories.
func (c *Client) Put(_ context.Context, key string, data []byte) error {
	if err := c.fs.MkdirAll(path.Dir(key), dirPerm); err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	if err := util.WriteFile(c.fs, key, data, filePerm); err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}

	return nil
}

// Get returns the data stored at the given key.
func (c *Client) Get(_ context.Context, key string) ([]byte, error) {
	data, err := util.ReadFile(c.fs, key)
	if err != nil {
		return nil, toStorageError("get", key, err)
	}

	return data, nil
}

// Copy copies the file at src to dst within the filesystem.
func (c *Client) Copy(_ context.Context, src, dst string) error {
	in, err := c.fs.Open(src)
	if err != nil {
		return toStorageError("copy", src, err)
	}
	defer func() {
		_ = in.Close()
	}()

	if err := c.fs.MkdirAll(path.Dir(dst), dirPerm); err != nil {
		return fmt.Errorf("copy %s: %w", dst, err)
	}

	out, err := c.fs.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("copy %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("copy %s: %w", dst, err)
	}

	return nil
}

func toStorageError(op, key string, err error) error {
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s %s: %w", op, key, storage.ErrObjectNotFound)
	}
	return fmt.Errorf("%s %s: %w", op, key, err)
}
