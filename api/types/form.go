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

// Package types provides the types shared by the server, the client and the
// CLI of the forms manager.
package types

import (
	"encoding/json"
	"fmt"
)

// FormMetadata is the lightweight record of a form. ID is derived from the
// title when the form is created and never changes afterwards.
type FormMetadata struct {
	// ID is the identifier of the form, shared by both stores.
	ID string `json:"id"`

	// Title is the human-readable title of the form.
	Title string `json:"title"`

	// Organisation is the organisation this form belongs to.
	Organisation string `json:"organisation"`

	// TeamName is the name of the team who owns this form.
	TeamName string `json:"teamName"`

	// TeamEmail is the email of the team who owns this form.
	TeamEmail string `json:"teamEmail"`
}

// FormState is the lifecycle state of a form definition.
type FormState string

const (
	// FormStateDraft is the editable, unpublished state of a definition.
	FormStateDraft FormState = "draft"

	// FormStateLive is the published state, only reached by promotion.
	FormStateLive FormState = "live"
)

// Validate returns an error if the state is neither draft nor live.
func (s FormState) Validate() error {
	switch s {
	case FormStateDraft, FormStateLive:
		return nil
	}
	return fmt.Errorf("%q: %w", string(s), ErrInvalidFormState)
}

// FormDefinition is the decoded JSON document describing the pages,
// components, conditions, sections and lists of a form. The server treats it
// as opaque apart from the structural checks of the schema validator.
type FormDefinition map[string]any

// Name returns the name of the definition, or an empty string.
func (d FormDefinition) Name() string {
	name, _ := d["name"].(string)
	return name
}

// WithName returns a shallow copy of the definition with the name replaced.
// The receiver is left untouched.
func (d FormDefinition) WithName(name string) FormDefinition {
	clone := make(FormDefinition, len(d)+1)
	for k, v := range d {
		clone[k] = v
	}
	clone["name"] = name
	return clone
}

// Bytes encodes the definition as JSON.
func (d FormDefinition) Bytes() ([]byte, error) {
	bytes, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshal form definition: %w", err)
	}
	return bytes, nil
}

// NewFormDefinition decodes a definition from its JSON encoding. The document
// must be a JSON object.
func NewFormDefinition(data []byte) (FormDefinition, error) {
	var definition FormDefinition
	if err := json.Unmarshal(data, &definition); err != nil {
		return nil, fmt.Errorf("unmarshal form definition: %w", err)
	}
	if definition == nil {
		return nil, fmt.Errorf("unmarshal form definition: %w", ErrNotAnObject)
	}
	return definition, nil
}
