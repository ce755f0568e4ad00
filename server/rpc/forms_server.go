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
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"

	"github.com/defra-forms/forms-manager/api/types"
	"github.com/defra-forms/forms-manager/internal/version"
	"github.com/defra-forms/forms-manager/server/backend"
	"github.com/defra-forms/forms-manager/server/forms"
	"github.com/defra-forms/forms-manager/server/logging"
)

type formsServer struct {
	backend         *backend.Backend
	maxRequestBytes int64
}

// newFormsServer creates a new instance of formsServer.
func newFormsServer(be *backend.Backend, maxRequestBytes int64) *formsServer {
	return &formsServer{
		backend:         be,
		maxRequestBytes: maxRequestBytes,
	}
}

func registerFormsServer(mux *http.ServeMux, s *formsServer) {
	mux.HandleFunc("GET /forms", s.ListForms)
	mux.HandleFunc("POST /forms", s.CreateForm)
	mux.HandleFunc("GET /forms/{id}", s.GetForm)
	mux.HandleFunc("GET /forms/{id}/definition", s.GetFormDefinition)
	mux.HandleFunc("GET /forms/{id}/definition/live", s.GetLiveFormDefinition)
	mux.HandleFunc("POST /forms/{id}/promote", s.PromoteDraftToLive)
}

// ListForms lists the metadata of all forms.
func (s *formsServer) ListForms(w http.ResponseWriter, r *http.Request) {
	list, err := forms.ListForms(r.Context(), s.backend)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, list)
}

// CreateForm creates a new form from the fields in the request body.
func (s *formsServer) CreateForm(w http.ResponseWriter, r *http.Request) {
	var fields types.CreateFormFields
	body := http.MaxBytesReader(w, r.Body, s.maxRequestBytes)
	if err := json.NewDecoder(body).Decode(&fields); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	form, err := forms.CreateForm(r.Context(), s.backend, &fields)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, types.FormStatusResponse{
		ID:     form.ID,
		Status: types.StatusCreated,
	})
}

// GetForm returns the metadata of a form.
func (s *formsServer) GetForm(w http.ResponseWriter, r *http.Request) {
	form, err := forms.GetForm(r.Context(), s.backend, r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, form)
}

// GetFormDefinition returns the draft definition of a form.
func (s *formsServer) GetFormDefinition(w http.ResponseWriter, r *http.Request) {
	definition, err := forms.GetFormDefinition(r.Context(), s.backend, r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, definition)
}

// GetLiveFormDefinition returns the live definition of a form.
func (s *formsServer) GetLiveFormDefinition(w http.ResponseWriter, r *http.Request) {
	definition, err := forms.GetLiveFormDefinition(r.Context(), s.backend, r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, definition)
}

// PromoteDraftToLive publishes the draft definition of a form.
func (s *formsServer) PromoteDraftToLive(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := forms.PromoteDraftToLive(r.Context(), s.backend, id); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, types.FormStatusResponse{
		ID:     id,
		Status: types.StatusLive,
	})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, types.HealthResponse{Status: types.StatusOK})
}

func handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, types.VersionDetail{
		Version:   version.Version,
		GoVersion: runtime.Version(),
		BuildDate: version.BuildDate,
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.From(r.Context()).Errorf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := toErrorResponse(err)
	if status >= http.StatusInternalServerError {
		logging.From(r.Context()).Error(err)
	}
	writeJSON(w, r, status, resp)
}
