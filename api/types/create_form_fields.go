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

package types

import (
	"strings"

	"github.com/defra-forms/forms-manager/internal/validation"
)

// CreateFormFields is the payload used to create a form.
type CreateFormFields struct {
	// Title is the title of the form. The identifier is derived from it.
	Title string `json:"title" validate:"required,max=250"`

	// Organisation is the organisation the form belongs to.
	Organisation string `json:"organisation" validate:"required,max=100"`

	// TeamName is the name of the team who owns the form.
	TeamName string `json:"teamName" validate:"required,max=100"`

	// TeamEmail is the email of the team who owns the form.
	TeamEmail string `json:"teamEmail" validate:"required,email"`
}

// Normalize trims the surrounding whitespace of every field.
func (f *CreateFormFields) Normalize() {
	f.Title = strings.TrimSpace(f.Title)
	f.Organisation = strings.TrimSpace(f.Organisation)
	f.TeamName = strings.TrimSpace(f.TeamName)
	f.TeamEmail = strings.TrimSpace(f.TeamEmail)
}

// Validate validates the CreateFormFields.
func (f *CreateFormFields) Validate() error {
	return validation.ValidateStruct(f)
}

// ToFormMetadata returns the metadata record of the form with the given id.
func (f *CreateFormFields) ToFormMetadata(id string) *FormMetadata {
	return &FormMetadata{
		ID:           id,
		Title:        f.Title,
		Organisation: f.Organisation,
		TeamName:     f.TeamName,
		TeamEmail:    f.TeamEmail,
	}
}
