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

package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/defra-forms/forms-manager/api/types"
	"github.com/defra-forms/forms-manager/client"
	"github.com/defra-forms/forms-manager/internal/version"
	"github.com/defra-forms/forms-manager/server/backend"
	"github.com/defra-forms/forms-manager/server/profiling/prometheus"
	"github.com/defra-forms/forms-manager/server/rpc"
)

func newTestClient(t *testing.T) *client.Client {
	metrics, err := prometheus.NewMetrics()
	require.NoError(t, err)

	be, err := backend.New(context.Background(), &backend.Config{
		MetadataStore:       backend.StoreMemory,
		DefinitionStore:     backend.StoreMemory,
		DefinitionDirectory: "forms",
	}, nil, nil, nil, metrics)
	require.NoError(t, err)

	server := httptest.NewServer(rpc.NewHandler(&rpc.Config{
		Port:            8080,
		ReadTimeout:     "5s",
		WriteTimeout:    "5s",
		MaxRequestBytes: 1024,
	}, be))
	t.Cleanup(server.Close)

	cli, err := client.New(
		strings.TrimPrefix(server.URL, "http://"),
		client.WithTimeout(5*time.Second),
		client.WithLogger(zap.NewNop()),
	)
	require.NoError(t, err)
	return cli
}

func TestClient(t *testing.T) {
	ctx := context.Background()

	t.Run("form lifecycle test", func(t *testing.T) {
		cli := newTestClient(t)

		forms, err := cli.ListForms(ctx)
		require.NoError(t, err)
		assert.Empty(t, forms)

		id, err := cli.CreateForm(ctx, &types.CreateFormFields{
			Title:        "Test form",
			Organisation: "Defra",
			TeamName:     "Forms",
			TeamEmail:    "forms@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "test-form", id)

		form, err := cli.GetForm(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Test form", form.Title)

		forms, err = cli.ListForms(ctx)
		require.NoError(t, err)
		assert.Len(t, forms, 1)

		draft, err := cli.GetFormDefinition(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Test form", draft.Name())

		require.NoError(t, cli.PromoteDraftToLive(ctx, id))
		live, err := cli.GetLiveFormDefinition(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, draft, live)
	})

	t.Run("response error test", func(t *testing.T) {
		cli := newTestClient(t)

		_, err := cli.GetForm(ctx, "missing-form")
		var respErr *client.ResponseError
		require.True(t, errors.As(err, &respErr))
		assert.Equal(t, http.StatusNotFound, respErr.StatusCode)
		assert.Equal(t, "ErrFormNotFound", respErr.Code)

		_, err = cli.CreateForm(ctx, &types.CreateFormFields{Title: "Test form"})
		require.True(t, errors.As(err, &respErr))
		assert.Equal(t, http.StatusBadRequest, respErr.StatusCode)
		assert.Equal(t, "ErrInvalidFormFields", respErr.Code)
	})

	t.Run("non json error test", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad gateway", http.StatusBadGateway)
		}))
		defer server.Close()

		cli, err := client.New(server.URL)
		require.NoError(t, err)

		_, err = cli.Health(ctx)
		var respErr *client.ResponseError
		require.True(t, errors.As(err, &respErr))
		assert.Equal(t, http.StatusBadGateway, respErr.StatusCode)
		assert.Equal(t, http.StatusText(http.StatusBadGateway), respErr.Message)
	})

	t.Run("health and version test", func(t *testing.T) {
		cli := newTestClient(t)

		status, err := cli.Health(ctx)
		require.NoError(t, err)
		assert.Equal(t, types.StatusOK, status)

		detail, err := cli.ServerVersion(ctx)
		require.NoError(t, err)
		assert.Equal(t, version.Version, detail.Version)
	})
}
