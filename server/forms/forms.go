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

// Package forms provides the lifecycle of forms: creating a form from the
// empty template, reading its metadata and definitions, and promoting its
// draft definition to live.
package forms

import (
	"context"
	"errors"
	"fmt"
	gotime "time"

	"github.com/defra-forms/forms-manager/api/types"
	"github.com/defra-forms/forms-manager/internal/validation"
	"github.com/defra-forms/forms-manager/pkg/formid"
	"github.com/defra-forms/forms-manager/pkg/schema"
	"github.com/defra-forms/forms-manager/server/backend"
	"github.com/defra-forms/forms-manager/server/backend/database"
	"github.com/defra-forms/forms-manager/server/backend/messagebroker"
	"github.com/defra-forms/forms-manager/server/logging"
)

// CreateForm creates a new form with the given fields. The draft definition
// is written before the metadata record, so a record never exists without a
// definition. A failure after the definition is written leaves it orphaned.
func CreateForm(
	ctx context.Context,
	be *backend.Backend,
	fields *types.CreateFormFields,
) (*types.FormMetadata, error) {
	f := *fields
	f.Normalize()
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormFields, err)
	}

	id := formid.Derive(f.Title)
	if id == "" {
		return nil, fmt.Errorf("%q: %w", f.Title, ErrEmptyFormID)
	}
	ctx = logging.WithFormID(ctx, id)

	exists, err := be.DB.FormInfoExists(ctx, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%s: %w", id, ErrFormAlreadyExists)
	}

	template, err := emptyForm()
	if err != nil {
		return nil, err
	}

	candidate := template.WithName(f.Title)
	if result := schema.Validate(candidate); !result.Valid {
		return nil, fmt.Errorf("%s: %w: %s", id, ErrInvalidFormDefinition, result)
	}

	if err := be.Definitions.Create(ctx, id, candidate); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", id, ErrFailedCreationOperation, err)
	}

	info, err := be.DB.CreateFormInfo(ctx, database.NewFormInfo(f.ToFormMetadata(id)))
	if err != nil {
		logging.From(ctx).Warnf("draft definition is left without metadata: %v", err)
		return nil, fmt.Errorf("%s: %w: %w", id, ErrFailedCreationOperation, err)
	}

	be.Metrics.AddFormCreated()
	produceFormEvent(ctx, be, id, messagebroker.FormCreatedEvent)

	return info.ToFormMetadata(), nil
}

// ListForms returns the metadata of all forms.
func ListForms(
	ctx context.Context,
	be *backend.Backend,
) ([]*types.FormMetadata, error) {
	infos, err := be.DB.ListFormInfos(ctx)
	if err != nil {
		return nil, err
	}

	forms := make([]*types.FormMetadata, 0, len(infos))
	for _, info := range infos {
		forms = append(forms, info.ToFormMetadata())
	}

	return forms, nil
}

// GetForm returns the metadata of the given form.
func GetForm(
	ctx context.Context,
	be *backend.Backend,
	id string,
) (*types.FormMetadata, error) {
	if err := validateFormID(id); err != nil {
		return nil, err
	}

	info, err := be.DB.FindFormInfoByID(ctx, id)
	if errors.Is(err, database.ErrFormInfoNotFound) {
		return nil, fmt.Errorf("%s: %w", id, ErrFormNotFound)
	}
	if err != nil {
		return nil, err
	}

	return info.ToFormMetadata(), nil
}

// GetFormDefinition returns the draft definition of the given form.
func GetFormDefinition(
	ctx context.Context,
	be *backend.Backend,
	id string,
) (types.FormDefinition, error) {
	if err := validateFormID(id); err != nil {
		return nil, err
	}

	return be.Definitions.Get(ctx, id)
}

// GetLiveFormDefinition returns the live definition of the given form.
func GetLiveFormDefinition(
	ctx context.Context,
	be *backend.Backend,
	id string,
) (types.FormDefinition, error) {
	if err := validateFormID(id); err != nil {
		return nil, err
	}

	return be.Definitions.GetLive(ctx, id)
}

// PromoteDraftToLive copies the draft definition of the given form over its
// live definition. The draft is not validated again.
func PromoteDraftToLive(
	ctx context.Context,
	be *backend.Backend,
	id string,
) error {
	if err := validateFormID(id); err != nil {
		return err
	}

	ctx = logging.WithFormID(ctx, id)

	if err := be.Definitions.PromoteDraftToLive(ctx, id); err != nil {
		return err
	}

	be.Metrics.AddFormPromoted()
	produceFormEvent(ctx, be, id, messagebroker.FormPromotedEvent)

	return nil
}

// produceFormEvent publishes a form event. The operation has already
// succeeded, so a failure is only logged.
func produceFormEvent(
	ctx context.Context,
	be *backend.Backend,
	id string,
	eventType messagebroker.FormEventType,
) {
	if err := be.MsgBroker.Produce(ctx, messagebroker.FormEventMessage{
		FormID:    id,
		EventType: eventType,
		Timestamp: gotime.Now(),
	}); err != nil {
		logging.From(ctx).Errorf("failed to produce form event: %v", err)
	}
}

// validateFormID rejects ids that could not have been derived from a title.
func validateFormID(id string) error {
	if err := validation.ValidateValue(id, "required,form_id"); err != nil {
		return fmt.Errorf("%q: %w: %w", id, ErrInvalidFormID, err)
	}
	return nil
}
