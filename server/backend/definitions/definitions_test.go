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

package definitions_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/defra-forms/forms-manager/api/types"
	"github.com/defra-forms/forms-manager/server/backend/definitions"
	"github.com/defra-forms/forms-manager/server/backend/storage"
	"github.com/defra-forms/forms-manager/server/backend/storage/billy"
)

// failingClient returns the given error from every operation.
type failingClient struct {
	err error
}

func (c *failingClient) Put(context.Context, string, []byte) error {
	return c.err
}

func (c *failingClient) Get(context.Context, string) ([]byte, error) {
	return nil, c.err
}

func (c *failingClient) Copy(context.Context, string, string) error {
	return c.err
}

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run("key test", func(t *testing.T) {
		store := definitions.New(billy.NewInMemory(), "forms")
		assert.Equal(t, "forms/draft/test-form.json", store.Key("test-form", types.FormStateDraft))
		assert.Equal(t, "forms/live/test-form.json", store.Key("test-form", types.FormStateLive))
	})

	t.Run("create and get test", func(t *testing.T) {
		store := definitions.New(billy.NewInMemory(), "forms")
		definition := types.FormDefinition{"name": "Test form", "pages": []any{}}

		require.NoError(t, store.Create(ctx, "test-form", definition))
		got, err := store.Get(ctx, "test-form")
		require.NoError(t, err)
		assert.Equal(t, definition, got)

		_, err = store.GetLive(ctx, "test-form")
		assert.ErrorIs(t, err, definitions.ErrFailedToReadForm)
	})

	t.Run("create overwrites draft test", func(t *testing.T) {
		store := definitions.New(billy.NewInMemory(), "forms")

		require.NoError(t, store.Create(ctx, "test-form", types.FormDefinition{"name": "first"}))
		require.NoError(t, store.Create(ctx, "test-form", types.FormDefinition{"name": "second"}))

		got, err := store.Get(ctx, "test-form")
		require.NoError(t, err)
		assert.Equal(t, "second", got.Name())
	})

	t.Run("get missing definition test", func(t *testing.T) {
		store := definitions.New(billy.NewInMemory(), "forms")

		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, definitions.ErrFailedToReadForm)
	})

	t.Run("get empty definition test", func(t *testing.T) {
		client := billy.NewInMemory()
		store := definitions.New(client, "forms")
		require.NoError(t, client.Put(ctx, store.Key("empty", types.FormStateDraft), nil))

		_, err := store.Get(ctx, "empty")
		assert.ErrorIs(t, err, definitions.ErrFailedToReadForm)
	})

	t.Run("get invalid definition test", func(t *testing.T) {
		client := billy.NewInMemory()
		store := definitions.New(client, "forms")
		require.NoError(t, client.Put(ctx, store.Key("broken", types.FormStateDraft), []byte("{")))

		_, err := store.Get(ctx, "broken")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, definitions.ErrFailedToReadForm)
	})

	t.Run("storage error propagates unchanged test", func(t *testing.T) {
		errStorage := errors.New("access denied")
		store := definitions.New(&failingClient{err: errStorage}, "forms")

		_, err := store.Get(ctx, "test-form")
		assert.Equal(t, errStorage, err)

		err = store.Create(ctx, "test-form", types.FormDefinition{"name": "x"})
		assert.ErrorIs(t, err, errStorage)

		err = store.PromoteDraftToLive(ctx, "test-form")
		assert.ErrorIs(t, err, errStorage)
		assert.NotErrorIs(t, err, definitions.ErrFailedToReadForm)
	})

	t.Run("promote draft to live test", func(t *testing.T) {
		client := billy.NewInMemory()
		store := definitions.New(client, "forms")
		require.NoError(t, store.Create(ctx, "test-form", types.FormDefinition{"name": "v1"}))

		require.NoError(t, store.PromoteDraftToLive(ctx, "test-form"))
		live, err := store.GetLive(ctx, "test-form")
		require.NoError(t, err)
		assert.Equal(t, "v1", live.Name())

		draftBytes, err := client.Get(ctx, store.Key("test-form", types.FormStateDraft))
		require.NoError(t, err)
		liveBytes, err := client.Get(ctx, store.Key("test-form", types.FormStateLive))
		require.NoError(t, err)
		assert.Equal(t, draftBytes, liveBytes)

		// A second promotion overwrites the live definition and keeps the draft.
		require.NoError(t, store.Create(ctx, "test-form", types.FormDefinition{"name": "v2"}))
		require.NoError(t, store.PromoteDraftToLive(ctx, "test-form"))
		live, err = store.GetLive(ctx, "test-form")
		require.NoError(t, err)
		assert.Equal(t, "v2", live.Name())

		draft, err := store.Get(ctx, "test-form")
		require.NoError(t, err)
		assert.Equal(t, "v2", draft.Name())
	})

	t.Run("promote without draft test", func(t *testing.T) {
		store := definitions.New(billy.NewInMemory(), "forms")

		err := store.PromoteDraftToLive(ctx, "missing")
		assert.ErrorIs(t, err, definitions.ErrFailedToReadForm)

		_, err = store.GetLive(ctx, "missing")
		assert.ErrorIs(t, err, definitions.ErrFailedToReadForm)
	})

	t.Run("promotion does not validate test", func(t *testing.T) {
		store := definitions.New(billy.NewInMemory(), "forms")
		invalid := types.FormDefinition{"pages": "not an array"}
		require.NoError(t, store.Create(ctx, "invalid", invalid))

		require.NoError(t, store.PromoteDraftToLive(ctx, "invalid"))
		live, err := store.GetLive(ctx, "invalid")
		require.NoError(t, err)
		assert.Equal(t, invalid, live)
	})
}

var _ storage.Client = (*failingClient)(nil)
