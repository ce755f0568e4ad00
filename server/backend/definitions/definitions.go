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

// Package definitions keeps the JSON definitions of forms in a storage
// client. Every form has a draft definition and, once promoted, a live one:
//
//	{root}/draft/{id}.json
//	{root}/live/{id}.json
package definitions

import (
	"context"
	"errors"
	"fmt"
	"path"

	"github.com/defra-forms/forms-manager/api/types"
	fmerrors "github.com/defra-forms/forms-manager/pkg/errors"
	"github.com/defra-forms/forms-manager/server/backend/storage"
)

// ErrFailedToReadForm is returned when a definition is absent or empty.
var ErrFailedToReadForm = fmerrors.NotFound("failed to read form").WithCode("ErrFailedToReadForm")

// Store keeps form definitions under a root directory of a storage client.
type Store struct {
	client storage.Client
	root   string
}

// New creates a new definition store.
func New(client storage.Client, root string) *Store {
	return &Store{
		client: client,
		root:   root,
	}
}

// Key returns the storage key of the definition of the given form and state.
func (s *Store) Key(id string, state types.FormState) string {
	return path.Join(s.root, string(state), id+".json")
}

// Create writes the definition as the draft of the given form. An existing
// draft is overwritten.
func (s *Store) Create(ctx context.Context, id string, definition types.FormDefinition) error {
	data, err := definition.Bytes()
	if err != nil {
		return err
	}

	if err := s.client.Put(ctx, s.Key(id, types.FormStateDraft), data); err != nil {
		return fmt.Errorf("create draft definition of %s: %w", id, err)
	}

	return nil
}

// Get returns the draft definition of the given form.
func (s *Store) Get(ctx context.Context, id string) (types.FormDefinition, error) {
	return s.get(ctx, id, types.FormStateDraft)
}

// GetLive returns the live definition of the given form.
func (s *Store) GetLive(ctx context.Context, id string) (types.FormDefinition, error) {
	return s.get(ctx, id, types.FormStateLive)
}

// PromoteDraftToLive copies the draft definition of the given form over its
// live definition. The draft is kept and is not validated again.
func (s *Store) PromoteDraftToLive(ctx context.Context, id string) error {
	err := s.client.Copy(ctx, s.Key(id, types.FormStateDraft), s.Key(id, types.FormStateLive))
	if errors.Is(err, storage.ErrObjectNotFound) {
		return fmt.Errorf("promote %s: %w", id, ErrFailedToReadForm)
	}
	if err != nil {
		return fmt.Errorf("promote %s: %w", id, err)
	}

	return nil
}

// get reads the definition of the given form and state. A missing or empty
// object is ErrFailedToReadForm; any other storage error is returned as is.
func (s *Store) get(ctx context.Context, id string, state types.FormState) (types.FormDefinition, error) {
	data, err := s.client.Get(ctx, s.Key(id, state))
	if errors.Is(err, storage.ErrObjectNotFound) {
		return nil, fmt.Errorf("%s definition of %s: %w", state, id, ErrFailedToReadForm)
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%s definition of %s is empty: %w", state, id, ErrFailedToReadForm)
	}

	return types.NewFormDefinition(data)
}
