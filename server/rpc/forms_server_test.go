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

package rpc_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/defra-forms/forms-manager/api/types"
	"github.com/defra-forms/forms-manager/internal/version"
	"github.com/defra-forms/forms-manager/server/backend"
	"github.com/defra-forms/forms-manager/server/backend/definitions"
	"github.com/defra-forms/forms-manager/server/backend/storage"
	"github.com/defra-forms/forms-manager/server/profiling/prometheus"
	"github.com/defra-forms/forms-manager/server/rpc"
)

const createFormBody = `{
	"title": "Test form",
	"organisation": "Defra",
	"teamName": "Forms",
	"teamEmail": "forms@example.com"
}`

var testRPCConfig = &rpc.Config{
	Port:            8080,
	ReadTimeout:     "5s",
	WriteTimeout:    "5s",
	MaxRequestBytes: 1024,
}

type brokenStorage struct{}

func (brokenStorage) Put(context.Context, string, []byte) error {
	return errors.New("bucket unreachable")
}

func (brokenStorage) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("bucket unreachable")
}

func (brokenStorage) Copy(context.Context, string, string) error {
	return errors.New("bucket unreachable")
}

var _ storage.Client = brokenStorage{}

func newTestServer(t *testing.T) *httptest.Server {
	metrics, err := prometheus.NewMetrics()
	require.NoError(t, err)

	be, err := backend.New(context.Background(), &backend.Config{
		MetadataStore:       backend.StoreMemory,
		DefinitionStore:     backend.StoreMemory,
		DefinitionDirectory: "forms",
	}, nil, nil, nil, metrics)
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, be.Shutdown())
	})

	server := httptest.NewServer(rpc.NewHandler(testRPCConfig, be))
	t.Cleanup(server.Close)
	return server
}

func doRequest(t *testing.T, method, url, body string) (*http.Response, []byte) {
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, resp.Body.Close())
	}()

	var raw json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	return resp, raw
}

func decodeError(t *testing.T, data []byte) types.ErrorResponse {
	var resp types.ErrorResponse
	require.NoError(t, json.Unmarshal(data, &resp))
	return resp
}

func TestFormsServer(t *testing.T) {
	t.Run("form lifecycle test", func(t *testing.T) {
		server := newTestServer(t)

		resp, body := doRequest(t, http.MethodGet, server.URL+"/forms", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `[]`, string(body))

		resp, body = doRequest(t, http.MethodPost, server.URL+"/forms", createFormBody)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.JSONEq(t, `{"id": "test-form", "status": "created"}`, string(body))
		assert.NotEmpty(t, resp.Header.Get(rpc.RequestIDHeader))

		resp, body = doRequest(t, http.MethodGet, server.URL+"/forms/test-form", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{
			"id": "test-form",
			"title": "Test form",
			"organisation": "Defra",
			"teamName": "Forms",
			"teamEmail": "forms@example.com"
		}`, string(body))

		resp, body = doRequest(t, http.MethodGet, server.URL+"/forms/test-form/definition", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		definition, err := types.NewFormDefinition(body)
		require.NoError(t, err)
		assert.Equal(t, "Test form", definition.Name())

		resp, body = doRequest(t, http.MethodGet, server.URL+"/forms/test-form/definition/live", "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "ErrFailedToReadForm", decodeError(t, body).Code)

		resp, body = doRequest(t, http.MethodPost, server.URL+"/forms/test-form/promote", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"id": "test-form", "status": "live"}`, string(body))

		resp, body = doRequest(t, http.MethodGet, server.URL+"/forms/test-form/definition/live", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		live, err := types.NewFormDefinition(body)
		require.NoError(t, err)
		assert.Equal(t, definition, live)
	})

	t.Run("error status test", func(t *testing.T) {
		server := newTestServer(t)

		resp, _ := doRequest(t, http.MethodPost, server.URL+"/forms", createFormBody)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		resp, body := doRequest(t, http.MethodPost, server.URL+"/forms", createFormBody)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "ErrFormAlreadyExists", decodeError(t, body).Code)

		resp, body = doRequest(t, http.MethodGet, server.URL+"/forms/missing-form", "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "ErrFormNotFound", decodeError(t, body).Code)

		resp, body = doRequest(t, http.MethodGet, server.URL+"/forms/Test%20Form", "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "ErrInvalidFormID", decodeError(t, body).Code)

		resp, body = doRequest(t, http.MethodPost, server.URL+"/forms/missing-form/promote", "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "ErrFailedToReadForm", decodeError(t, body).Code)

		resp, body = doRequest(t, http.MethodPost, server.URL+"/forms", `{"title": "Other form"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "ErrInvalidFormFields", decodeError(t, body).Code)

		resp, body = doRequest(t, http.MethodPost, server.URL+"/forms", `{"title": `)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "ErrInvalidRequestBody", decodeError(t, body).Code)

		resp, body = doRequest(t, http.MethodPost, server.URL+"/forms", `{"title": "`+strings.Repeat("a", 2048)+`"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "ErrInvalidRequestBody", decodeError(t, body).Code)
	})

	t.Run("storage failure test", func(t *testing.T) {
		metrics, err := prometheus.NewMetrics()
		require.NoError(t, err)
		be, err := backend.New(context.Background(), &backend.Config{
			MetadataStore:       backend.StoreMemory,
			DefinitionStore:     backend.StoreMemory,
			DefinitionDirectory: "forms",
		}, nil, nil, nil, metrics)
		require.NoError(t, err)
		be.Definitions = definitions.New(brokenStorage{}, "forms")

		server := httptest.NewServer(rpc.NewHandler(testRPCConfig, be))
		defer server.Close()

		resp, body := doRequest(t, http.MethodPost, server.URL+"/forms", createFormBody)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "ErrFailedCreationOperation", decodeError(t, body).Code)

		resp, body = doRequest(t, http.MethodGet, server.URL+"/forms/test-form/definition", "")
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "internal", decodeError(t, body).Code)
	})

	t.Run("health test", func(t *testing.T) {
		server := newTestServer(t)

		resp, body := doRequest(t, http.MethodGet, server.URL+"/health", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"status": "ok"}`, string(body))
	})

	t.Run("version test", func(t *testing.T) {
		server := newTestServer(t)

		resp, body := doRequest(t, http.MethodGet, server.URL+"/version", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var detail types.VersionDetail
		require.NoError(t, json.Unmarshal(body, &detail))
		assert.Equal(t, version.Version, detail.Version)
		assert.NotEmpty(t, detail.GoVersion)
	})

	t.Run("request id test", func(t *testing.T) {
		server := newTestServer(t)

		req, err := http.NewRequest(http.MethodGet, server.URL+"/health", nil)
		require.NoError(t, err)
		req.Header.Set(rpc.RequestIDHeader, "given-id")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		assert.NoError(t, resp.Body.Close())
		assert.Equal(t, "given-id", resp.Header.Get(rpc.RequestIDHeader))
	})
}
