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

package forms

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/defra-forms/forms-manager/api/types"
	"github.com/defra-forms/forms-manager/pkg/schema"
)

//go:embed empty-form.json
var emptyFormJSON []byte

// emptyForm returns the template every new form starts from. It is parsed and
// validated once.
var emptyForm = sync.OnceValues(func() (types.FormDefinition, error) {
	return parseTemplate(emptyFormJSON)
})

// parseTemplate decodes and validates a form template.
func parseTemplate(data []byte) (types.FormDefinition, error) {
	template, err := types.NewFormDefinition(data)
	if err != nil {
		return nil, fmt.Errorf("parse empty form template: %w: %w", ErrInvalidFormDefinition, err)
	}

	if result := schema.Validate(template); !result.Valid {
		return nil, fmt.Errorf("empty form template: %w: %s", ErrInvalidFormDefinition, result)
	}

	return template, nil
}
