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

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidation(t *testing.T) {
	t.Run("ValidateValue test", func(t *testing.T) {
		assert.NoError(t, ValidateValue("test-form", "required,form_id"))
		assert.NoError(t, ValidateValue("a-super-duper-form-from-defra", "required,form_id"))

		err := ValidateValue("Test Form", "required,form_id")
		assert.Equal(t, "form_id", err.(Violation).Tag)

		err = ValidateValue("../live/test-form", "required,form_id")
		assert.Equal(t, "form_id", err.(Violation).Tag)

		err = ValidateValue("", "required,form_id")
		assert.Equal(t, "required", err.(Violation).Tag)

		assert.NoError(t, ValidateValue("/page-one", "page_path"))
		err = ValidateValue("page one", "page_path")
		assert.Equal(t, "page_path", err.(Violation).Tag)
	})

	t.Run("ValidateStruct test", func(t *testing.T) {
		type team struct {
			Name  string `json:"teamName" validate:"required,max=10"`
			Email string `json:"teamEmail" validate:"required,email"`
		}

		err := ValidateStruct(team{Name: "a team name that is too long", Email: "not-an-email"})
		require.Error(t, err)

		structError := err.(*StructError)
		assert.Len(t, structError.Violations, 2)
		assert.Equal(t, "teamName", structError.Violations[0].Field)
		assert.Equal(t, "max", structError.Violations[0].Tag)
		assert.Equal(t, "teamEmail", structError.Violations[1].Field)
		assert.Equal(t, "email", structError.Violations[1].Tag)
		assert.Contains(t, structError.Error(), "teamEmail must be a valid email address")

		assert.NoError(t, ValidateStruct(team{Name: "Defra", Email: "defraforms@defra.gov.uk"}))
	})

	t.Run("custom rule test", func(t *testing.T) {
		require.NoError(t, RegisterValidation("only_custom", func(v FieldLevel) bool {
			return v.Field().String() == "custom"
		}))
		require.NoError(t, RegisterTranslation("only_custom", "{0} must be custom"))

		assert.Error(t, ValidateValue("custom-invalid-value", "required,only_custom"))
		assert.NoError(t, ValidateValue("custom", "required,only_custom"))
	})
}
