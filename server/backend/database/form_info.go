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

package database

import (
	"time"

	"github.com/defra-forms/forms-manager/api/types"
)

// FormInfo is a struct for the metadata record of a form. It is created once
// and never updated.
type FormInfo struct {
	// ID is the identifier of the form, derived from its title.
	ID string `bson:"id" json:"id"`

	// Title is the title of the form.
	Title string `bson:"title" json:"title"`

	// Organisation is the organisation the form belongs to.
	Organisation string `bson:"organisation" json:"organisation"`

	// TeamName is the name of the team who owns the form.
	TeamName string `bson:"team_name" json:"teamName"`

	// TeamEmail is the email of the team who owns the form.
	TeamEmail string `bson:"team_email" json:"teamEmail"`

	// CreatedAt is the time when the form is created.
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// NewFormInfo creates a new record from the given metadata.
func NewFormInfo(metadata *types.FormMetadata) *FormInfo {
	return &FormInfo{
		ID:           metadata.ID,
		Title:        metadata.Title,
		Organisation: metadata.Organisation,
		TeamName:     metadata.TeamName,
		TeamEmail:    metadata.TeamEmail,
	}
}

// ToFormMetadata converts the FormInfo to a FormMetadata.
func (i *FormInfo) ToFormMetadata() *types.FormMetadata {
	return &types.FormMetadata{
		ID:           i.ID,
		Title:        i.Title,
		Organisation: i.Organisation,
		TeamName:     i.TeamName,
		TeamEmail:    i.TeamEmail,
	}
}

// DeepCopy returns a deep copy of the FormInfo.
func (i *FormInfo) DeepCopy() *FormInfo {
	if i == nil {
		return nil
	}

	return &FormInfo{
		ID:           i.ID,
		Title:        i.Title,
		Organisation: i.Organisation,
		TeamName:     i.TeamName,
		TeamEmail:    i.TeamEmail,
		CreatedAt:    i.CreatedAt,
	}
}
