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

package mongo_test

import (
	"context"
	"os"
	"testing"

	"github.com/rs/xid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	gomongo "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/defra-forms/forms-manager/server/backend/database"
	"github.com/defra-forms/forms-manager/server/backend/database/mongo"
	"github.com/defra-forms/forms-manager/server/backend/database/testcases"
)

// setupTestClient dials the MongoDB given by FORMS_MONGO_URI with a database
// of its own, or skips the test.
func setupTestClient(t *testing.T) (*mongo.Client, *mongo.Config) {
	uri := os.Getenv("FORMS_MONGO_URI")
	if uri == "" {
		t.Skip("FORMS_MONGO_URI is not set")
	}

	config := &mongo.Config{
		ConnectionTimeout: "5s",
		ConnectionURI:     uri,
		FormsDatabase:     "test-forms-" + xid.New().String(),
		PingTimeout:       "5s",
		CacheSize:         100,
	}
	require.NoError(t, config.Validate())

	cli, err := mongo.Dial(config)
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, cli.Close())
	})

	return cli, config
}

func TestClient(t *testing.T) {
	cli, config := setupTestClient(t)

	t.Run("RunListFormInfos test", func(t *testing.T) {
		testcases.RunListFormInfosTest(t, cli)
	})

	t.Run("RunCreateFormInfo test", func(t *testing.T) {
		testcases.RunCreateFormInfoTest(t, cli)
	})

	t.Run("RunCreateDuplicateFormInfo test", func(t *testing.T) {
		testcases.RunCreateDuplicateFormInfoTest(t, cli)
	})

	t.Run("RunFormInfoExists test", func(t *testing.T) {
		testcases.RunFormInfoExistsTest(t, cli)
	})

	t.Run("RunFindFormInfoByID test", func(t *testing.T) {
		testcases.RunFindFormInfoByIDTest(t, cli)
	})

	t.Run("list in insertion order test", func(t *testing.T) {
		ctx := context.Background()
		before, err := cli.ListFormInfos(ctx)
		require.NoError(t, err)

		for _, id := range []string{"zz-last-inserted-first", "aa-inserted-second"} {
			_, err := cli.CreateFormInfo(ctx, &database.FormInfo{ID: id, Title: id})
			require.NoError(t, err)
		}

		infos, err := cli.ListFormInfos(ctx)
		require.NoError(t, err)
		require.Len(t, infos, len(before)+2)
		assert.Equal(t, "zz-last-inserted-first", infos[len(before)].ID)
		assert.Equal(t, "aa-inserted-second", infos[len(before)+1].ID)
	})

	t.Run("list skips malformed documents test", func(t *testing.T) {
		ctx := context.Background()

		raw, err := gomongo.Connect(options.Client().ApplyURI(config.ConnectionURI))
		require.NoError(t, err)
		t.Cleanup(func() {
			assert.NoError(t, raw.Disconnect(context.Background()))
		})

		before, err := cli.ListFormInfos(ctx)
		require.NoError(t, err)

		_, err = raw.Database(config.FormsDatabase).Collection(mongo.ColForms).InsertMany(ctx, []any{
			bson.M{"id": "malformed-title", "title": 5},
			bson.M{"title": "record without id"},
		})
		require.NoError(t, err)

		_, err = cli.CreateFormInfo(ctx, &database.FormInfo{ID: "well-formed", Title: "Well Formed"})
		require.NoError(t, err)

		infos, err := cli.ListFormInfos(ctx)
		require.NoError(t, err)
		require.Len(t, infos, len(before)+1)
		assert.Equal(t, "well-formed", infos[len(before)].ID)
	})
}

func TestDial(t *testing.T) {
	t.Run("unreachable server test", func(t *testing.T) {
		_, err := mongo.Dial(&mongo.Config{
			ConnectionTimeout: "1s",
			ConnectionURI:     "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=100",
			FormsDatabase:     "test-forms",
			PingTimeout:       "200ms",
			CacheSize:         10,
		})
		assert.ErrorContains(t, err, "ping mongo")
	})
}
