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

package rpc

import (
	"context"
	goerrors "errors"
	"net/http"

	"github.com/defra-forms/forms-manager/api/types"
	"github.com/defra-forms/forms-manager/pkg/errors"
)

// statusClientClosedRequest is reported when the client went away before the
// response was written.
const statusClientClosedRequest = 499

var (
	// ErrInvalidRequestBody is returned when the body of a request can not be
	// decoded.
	ErrInvalidRequestBody = errors.InvalidArgument("invalid request body").WithCode("ErrInvalidRequestBody")
)

// toErrorResponse returns the HTTP status and the body for the given error.
// The status follows the StatusError in the chain of err.
func toErrorResponse(err error) (int, types.ErrorResponse) {
	if goerrors.Is(err, context.Canceled) {
		return statusClientClosedRequest, types.ErrorResponse{Code: "canceled", Message: err.Error()}
	}
	if goerrors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout, types.ErrorResponse{Code: "deadline_exceeded", Message: err.Error()}
	}

	status := errors.StatusOf(err)
	code := errors.CodeOf(err)
	if code == "" {
		if status == 0 {
			status = errors.ErrCodeInternal
		}
		code = status.String()
	}

	return status.HTTPStatus(), types.ErrorResponse{
		Code:    code,
		Message: err.Error(),
	}
}
