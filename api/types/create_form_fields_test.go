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

package types_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/defra-forms/forms-manager/api/types"
	"github.com/defra-forms/forms-manager/internal/validation"
)

func TestCreateFormFields(t *testing.T) {
	valid := func() *types.CreateFormFields {
		return &types.CreateFormFields{
			Title:        "Test form",
			Organisation: "Defra",
			TeamName:     "Defra Forms",
			TeamEmail:    "defraforms@defra.gov.uk",
		}
	}

	t.Run("valid fields test", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("normalize test", func(t *testing.T) {
		fields := &types.CreateFormFields{
			Title:        "  Test form ",
			Organisation: " Defra",
			TeamName:     "Defra Forms  ",
			TeamEmail:    " defraforms@defra.gov.uk ",
		}
		fields.Normalize()
		assert.Equal(t, valid(), fields)
	})

	t.Run("missing fields test", func(t *testing.T) {
		err := (&types.CreateFormFields{}).Validate()
		assert.Len(t, err.(*validation.StructError).Violations, 4)
	})

	t.Run("too long fields test", func(t *testing.T) {
		fields := valid()
		fields.Title = strings.Repeat("a", 251)
		fields.Organisation = strings.Repeat("b", 101)
		fields.TeamName = strings.Repeat("c", 101)

		err := fields.Validate()
		violations := err.(*validation.StructError).Violations
		assert.Len(t, violations, 3)
		for _, v := range violations {
			assert.Equal(t, "max", v.Tag)
		}
	})

	t.Run("invalid email test", func(t *testing.T) {
		fields := valid()
		fields.TeamEmail = "defraforms"

		err := fields.Validate()
		assert.Equal(t, "email", err.(*validation.StructError).Violations[0].Tag)
	})

	t.Run("to form metadata test", func(t *testing.T) {
		assert.Equal(t, &types.FormMetadata{
			ID:           "test-form",
			Title:        "Test form",
			Organisation: "Defra",
			TeamName:     "Defra Forms",
			TeamEmail:    "defraforms@defra.gov.uk",
		}, valid().ToFormMetadata("test-form"))
	})
}
