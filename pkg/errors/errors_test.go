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

package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode_String(t *testing.T) {
	tests := []struct {
		name string
		code StatusCode
		want string
	}{
		{"InvalidArgument", ErrCodeInvalidArgument, "invalid_argument"},
		{"NotFound", ErrCodeNotFound, "not_found"},
		{"AlreadyExists", ErrCodeAlreadyExists, "already_exists"},
		{"FailedPrecondition", ErrCodeFailedPrecondition, "failed_precondition"},
		{"Internal", ErrCodeInternal, "internal"},
		{"Unavailable", ErrCodeUnavailable, "unavailable"},
		{"Unknown", StatusCode(999), "code_999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.String())
		})
	}
}

func TestStatusCode_HTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ErrCodeInvalidArgument.HTTPStatus())
	assert.Equal(t, http.StatusNotFound, ErrCodeNotFound.HTTPStatus())
	assert.Equal(t, http.StatusConflict, ErrCodeAlreadyExists.HTTPStatus())
	assert.Equal(t, http.StatusPreconditionFailed, ErrCodeFailedPrecondition.HTTPStatus())
	assert.Equal(t, http.StatusServiceUnavailable, ErrCodeUnavailable.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, ErrCodeInternal.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, StatusCode(0).HTTPStatus())
}

func TestStatusCode_IsClientError(t *testing.T) {
	for _, code := range []StatusCode{
		ErrCodeInvalidArgument,
		ErrCodeNotFound,
		ErrCodeAlreadyExists,
		ErrCodeFailedPrecondition,
	} {
		t.Run(fmt.Sprintf("ClientError_%s", code), func(t *testing.T) {
			assert.True(t, code.IsClientError())
			assert.False(t, code.IsServerError())
		})
	}

	for _, code := range []StatusCode{ErrCodeInternal, ErrCodeUnavailable} {
		t.Run(fmt.Sprintf("ServerError_%s", code), func(t *testing.T) {
			assert.False(t, code.IsClientError())
			assert.True(t, code.IsServerError())
		})
	}
}

func TestStatusOf(t *testing.T) {
	t.Run("StatusError", func(t *testing.T) {
		assert.Equal(t, ErrCodeNotFound, StatusOf(NotFound("test error")))
	})

	t.Run("WrappedStatusError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", AlreadyExists("base error"))
		assert.Equal(t, ErrCodeAlreadyExists, StatusOf(err))
		assert.True(t, IsStatus(err, ErrCodeAlreadyExists))
		assert.True(t, IsClientError(err))
	})

	t.Run("JoinedWithPlainError", func(t *testing.T) {
		cause := errors.New("connection reset")
		sentinel := Internal("write failed").WithCode("ErrWriteFailed")
		err := fmt.Errorf("create: %w: %w", sentinel, cause)

		assert.Equal(t, ErrCodeInternal, StatusOf(err))
		assert.Equal(t, "ErrWriteFailed", CodeOf(err))
		assert.ErrorIs(t, err, sentinel)
		assert.ErrorIs(t, err, cause)
		assert.True(t, IsServerError(err))
	})

	t.Run("PlainError", func(t *testing.T) {
		err := errors.New("plain")
		assert.Equal(t, StatusCode(0), StatusOf(err))
		assert.Equal(t, "", CodeOf(err))
		assert.False(t, IsClientError(err))
		assert.False(t, IsServerError(err))
	})

	t.Run("Nil", func(t *testing.T) {
		assert.Equal(t, StatusCode(0), StatusOf(nil))
	})
}

func TestWithCode(t *testing.T) {
	base := NotFound("form not found")
	coded := base.WithCode("ErrFormNotFound")

	assert.Equal(t, "", base.Code())
	assert.Equal(t, "ErrFormNotFound", coded.Code())
	assert.Equal(t, base.Error(), coded.Error())
	assert.Equal(t, ErrCodeNotFound, coded.Status())
}
