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

// Package testcases contains testcases for database. It is used by database
// implementations to test their own implementations with the same testcases.
package testcases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/defra-forms/forms-manager/api/types"
	"github.com/defra-forms/forms-manager/pkg/formid"
	"github.com/defra-forms/forms-manager/server/backend/database"
)

// newFormInfo returns a record whose id is unique to the running test.
func newFormInfo(t *testing.T, suffix string) *database.FormInfo {
	title := t.Name() + " " + suffix
	return database.NewFormInfo(&types.FormMetadata{
		ID:           formid.Derive(title),
		Title:        title,
		Organisation: "Defra",
		TeamName:     "Defra Forms",
		TeamEmail:    "defraforms@defra.gov.uk",
	})
}

// RunCreateFormInfoTest runs the CreateFormInfo test for the given db.
func RunCreateFormInfoTest(t *testing.T, db database.Database) {
	t.Run("create form info test", func(t *testing.T) {
		ctx := context.Background()
		info := newFormInfo(t, "a")

		created, err := db.CreateFormInfo(ctx, info)
		assert.NoError(t, err)
		assert.Equal(t, info.ToFormMetadata(), created.ToFormMetadata())
		assert.False(t, created.CreatedAt.IsZero())

		found, err := db.FindFormInfoByID(ctx, info.ID)
		assert.NoError(t, err)
		assert.Equal(t, info.ToFormMetadata(), found.ToFormMetadata())
	})
}

// RunCreateDuplicateFormInfoTest runs the CreateFormInfo test with a
// duplicated id for the given db.
func RunCreateDuplicateFormInfoTest(t *testing.T, db database.Database) {
	t.Run("create duplicate form info test", func(t *testing.T) {
		ctx := context.Background()
		info := newFormInfo(t, "a")

		_, err := db.CreateFormInfo(ctx, info)
		assert.NoError(t, err)

		other := info.DeepCopy()
		other.Title = "Other title"
		_, err = db.CreateFormInfo(ctx, other)
		assert.ErrorIs(t, err, database.ErrFormInfoAlreadyExists)

		found, err := db.FindFormInfoByID(ctx, info.ID)
		assert.NoError(t, err)
		assert.Equal(t, info.Title, found.Title)
	})
}

// RunFormInfoExistsTest runs the FormInfoExists test for the given db.
func RunFormInfoExistsTest(t *testing.T, db database.Database) {
	t.Run("form info exists test", func(t *testing.T) {
		ctx := context.Background()
		info := newFormInfo(t, "a")

		exists, err := db.FormInfoExists(ctx, info.ID)
		assert.NoError(t, err)
		assert.False(t, exists)

		_, err = db.CreateFormInfo(ctx, info)
		assert.NoError(t, err)

		exists, err = db.FormInfoExists(ctx, info.ID)
		assert.NoError(t, err)
		assert.True(t, exists)
	})
}

// RunFindFormInfoByIDTest runs the FindFormInfoByID test for the given db.
func RunFindFormInfoByIDTest(t *testing.T, db database.Database) {
	t.Run("find form info by id test", func(t *testing.T) {
		ctx := context.Background()

		_, err := db.FindFormInfoByID(ctx, "not-exists")
		assert.ErrorIs(t, err, database.ErrFormInfoNotFound)

		info := newFormInfo(t, "a")
		_, err = db.CreateFormInfo(ctx, info)
		assert.NoError(t, err)

		found, err := db.FindFormInfoByID(ctx, info.ID)
		assert.NoError(t, err)
		assert.Equal(t, info.ID, found.ID)
		assert.Equal(t, info.TeamEmail, found.TeamEmail)

		// The returned record is a copy.
		found.Title = "Changed"
		again, err := db.FindFormInfoByID(ctx, info.ID)
		assert.NoError(t, err)
		assert.Equal(t, info.Title, again.Title)
	})
}

// RunListFormInfosTest runs the ListFormInfos test for the given db. The db
// must not have any form.
func RunListFormInfosTest(t *testing.T, db database.Database) {
	t.Run("list form infos test", func(t *testing.T) {
		ctx := context.Background()

		infos, err := db.ListFormInfos(ctx)
		assert.NoError(t, err)
		assert.NotNil(t, infos)
		assert.Len(t, infos, 0)

		var ids []string
		for _, suffix := range []string{"c", "a", "b"} {
			info := newFormInfo(t, suffix)
			_, err := db.CreateFormInfo(ctx, info)
			assert.NoError(t, err)
			ids = append(ids, info.ID)
		}

		infos, err = db.ListFormInfos(ctx)
		assert.NoError(t, err)

		var listed []string
		for _, info := range infos {
			listed = append(listed, info.ID)
		}
		assert.ElementsMatch(t, ids, listed)
	})
}
