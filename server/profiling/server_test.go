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

package profiling

import (
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/defra-forms/forms-manager/server/profiling/prometheus"
)

func TestServer(t *testing.T) {
	metrics, err := prometheus.NewMetrics()
	require.NoError(t, err)
	metrics.AddFormCreated()
	metrics.AddFormPromoted()

	serve := func(server *Server, method, path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		server.handler.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
		return rec
	}

	t.Run("metrics test", func(t *testing.T) {
		server := NewServer(&Config{Port: 8081}, metrics)

		rec := serve(server, http.MethodGet, "/metrics")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "forms_manager_forms_created_total 1")
		assert.Contains(t, rec.Body.String(), "forms_manager_forms_promoted_total 1")

		assert.Equal(t, http.StatusMethodNotAllowed, serve(server, http.MethodPost, "/metrics").Code)
	})

	t.Run("without metrics test", func(t *testing.T) {
		server := NewServer(&Config{Port: 8081}, nil)
		assert.Equal(t, http.StatusNotFound, serve(server, http.MethodGet, "/metrics").Code)
	})

	t.Run("pprof disabled test", func(t *testing.T) {
		server := NewServer(&Config{Port: 8081}, metrics)
		assert.Equal(t, http.StatusNotFound, serve(server, http.MethodGet, "/debug/pprof/").Code)
	})

	t.Run("pprof enabled test", func(t *testing.T) {
		server := NewServer(&Config{Port: 8081, EnablePprof: true}, nil)
		assert.Equal(t, http.StatusOK, serve(server, http.MethodGet, "/debug/pprof/").Code)
		assert.Equal(t, http.StatusOK, serve(server, http.MethodGet, "/debug/pprof/goroutine?debug=1").Code)
	})

	t.Run("start on a used port test", func(t *testing.T) {
		lis, err := net.Listen("tcp", ":0")
		require.NoError(t, err)
		defer func() {
			assert.NoError(t, lis.Close())
		}()

		server := NewServer(&Config{Port: lis.Addr().(*net.TCPAddr).Port}, metrics)
		assert.Error(t, server.Start())
	})
}
