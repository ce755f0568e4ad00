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
	"github.com/defra-forms/forms-manager/pkg/errors"
)

var (
	// ErrInvalidFormState is returned when a state is neither draft nor live.
	ErrInvalidFormState = errors.InvalidArgument("invalid form state").WithCode("ErrInvalidFormState")

	// ErrNotAnObject is returned when a form definition is not a JSON object.
	ErrNotAnObject = errors.InvalidArgument("form definition is not a JSON object").WithCode("ErrNotAnObject")
)
