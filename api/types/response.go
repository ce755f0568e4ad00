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

const (
	// StatusCreated is the status of a form that has just been created.
	StatusCreated = "created"

	// StatusLive is the status of a form whose draft has been promoted.
	StatusLive = "live"

	// StatusOK is the status of a healthy server.
	StatusOK = "ok"
)

// FormStatusResponse is the response of the operations changing a form.
type FormStatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// HealthResponse is the response of the health check.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the body of every failed request. Code is the code of
// the error, such as "ErrFormNotFound", or its status when it has none.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
