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

package billy_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/defra-forms/forms-manager/server/backend/storage"
	"github.com/defra-forms/forms-manager/server/backend/storage/billy"
)

func runClientTest(t *testing.T, client storage.Client) {
	ctx := context.Background()

	t.Run("put and get test", func(t *testing.T) {
		require.NoError(t, client.Put(ctx, "forms/draft/test.json", []byte(`{"name":"a"}`)))
		data, err := client.Get(ctx, "forms/draft/test.json")
		require.NoError(t, err)
		assert.Equal(t, `{"name":"a"}`, string(data))

		// Put replaces the previous object.
		require.NoError(t, client.Put(ctx, "forms/draft/test.json", []byte(`{}`)))
		data, err = client.Get(ctx, "forms/draft/test.json")
		require.NoError(t, err)
		assert.Equal(t, `{}`, string(data))
	})

	t.Run("get missing object test", func(t *testing.T) {
		_, err := client.Get(ctx, "forms/draft/missing.json")
		assert.ErrorIs(t, err, storage.ErrObjectNotFound)
	})

	t.Run("copy test", func(t *testing.T) {
		require.NoError(t, client.Put(ctx, "forms/draft/copy.json", []byte(`{"name":"draft"}`)))
		require.NoError(t, client.Put(ctx, "forms/live/copy.json", []byte(`{"name":"an older and longer live document"}`)))

		require.NoError(t, client.Copy(ctx, "forms/draft/copy.json", "forms/live/copy.json"))
		data, err := client.Get(ctx, "forms/live/copy.json")
		require.NoError(t, err)
		assert.Equal(t, `{"name":"draft"}`, string(data))

		data, err = client.Get(ctx, "forms/draft/copy.json")
		require.NoError(t, err)
		assert.Equal(t, `{"name":"draft"}`, string(data))
	})

	t.Run("copy missing source test", func(t *testing.T) {
		err := client.Copy(ctx, "forms/draft/none.json", "forms/live/none.json")
		assert.ErrorIs(t, err, storage.ErrObjectNotFound)

		_, err = client.Get(ctx, "forms/live/none.json")
		assert.ErrorIs(t, err, storage.ErrObjectNotFound)
	})
}

func TestInMemoryClient(t *testing.T) {
	runClientTest(t, billy.NewInMemory())
}

func TestOSClient(t *testing.T) {
	runClientTest(t, billy.NewOS(t.TempDir()))
}
