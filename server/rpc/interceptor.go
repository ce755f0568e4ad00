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
	"net/http"
	"time"

	"github.com/defra-forms/forms-manager/server/backend"
	"github.com/defra-forms/forms-manager/server/logging"
	"github.com/defra-forms/forms-manager/server/profiling/prometheus"
)

// RequestIDHeader is the header carrying the id of a request. An id given by
// the client is kept.
const RequestIDHeader = "X-Request-ID"

const unmatchedRoute = "unmatched"

// interceptor logs every request and records its metrics.
type interceptor struct {
	metrics *prometheus.Metrics
}

func newInterceptor(be *backend.Backend) *interceptor {
	return &interceptor{metrics: be.Metrics}
}

func (i *interceptor) wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = logging.NewRequestID()
		}
		w.Header().Set(RequestIDHeader, id)

		logger := logging.ForRequest(id)
		r = r.WithContext(logging.With(r.Context(), logger))

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		// The pattern is set by the mux once a route is matched.
		route := r.Pattern
		if route == "" {
			route = unmatchedRoute
		}

		duration := time.Since(start)
		logging.LogHTTPRequest(logger, r.Method, r.URL.Path, rec.status, duration)
		i.metrics.AddServerHandledCounter(r.Method, route, rec.status)
		i.metrics.ObserveServerHandledSeconds(r.Method, route, duration.Seconds())
	})
}

// statusRecorder keeps the status written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(status int) {
	if !r.wroteHeader {
		r.status = status
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	r.wroteHeader = true
	return r.ResponseWriter.Write(b)
}
