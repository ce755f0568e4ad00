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
	"github.com/defra-forms/forms-manager/pkg/errors"
	"github.com/defra-forms/forms-manager/server/backend/definitions"
)

var (
	// ErrFormAlreadyExists is returned when a form with the derived id exists.
	ErrFormAlreadyExists = errors.AlreadyExists("form already exists").WithCode("ErrFormAlreadyExists")

	// ErrInvalidFormDefinition is returned when a definition, or the empty
	// form template, fails schema validation.
	ErrInvalidFormDefinition = errors.InvalidArgument("invalid form definition").WithCode("ErrInvalidFormDefinition")

	// ErrInvalidFormFields is returned when the fields of a new form are
	// invalid.
	ErrInvalidFormFields = errors.InvalidArgument("invalid form fields").WithCode("ErrInvalidFormFields")

	// ErrInvalidFormID is returned when a form id has characters other than
	// lowercase letters, digits and hyphens.
	ErrInvalidFormID = errors.InvalidArgument("invalid form id").WithCode("ErrInvalidFormID")

	// ErrEmptyFormID is returned when a title derives to an empty id.
	ErrEmptyFormID = errors.InvalidArgument("title derives to an empty form id").WithCode("ErrEmptyFormID")

	// ErrFailedCreationOperation is returned when a store fails while a form
	// is created. The error of the store is wrapped as well.
	ErrFailedCreationOperation = errors.Internal("failed to create form").WithCode("ErrFailedCreationOperation")

	// ErrFormNotFound is returned when the metadata of a form is not found.
	ErrFormNotFound = errors.NotFound("form not found").WithCode("ErrFormNotFound")

	// ErrFailedToReadForm is returned when a definition is absent or empty.
	ErrFailedToReadForm = definitions.ErrFailedToReadForm
)
