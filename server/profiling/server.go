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
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/defra-forms/forms-manager/server/logging"
	"github.com/defra-forms/forms-manager/server/profiling/prometheus"
)

const (
	metricsPath = "/metrics"
	pprofPath   = "/debug/pprof/"

	readHeaderTimeout = 5 * time.Second
)

// Server serves the form metrics and the pprof profiles.
type Server struct {
	conf       *Config
	handler    http.Handler
	httpServer *http.Server
}

// NewServer creates an instance of Server. /metrics is not served when
// metrics is nil.
func NewServer(conf *Config, metrics *prometheus.Metrics) *Server {
	mux := http.NewServeMux()
	if metrics != nil {
		mux.Handle("GET "+metricsPath, promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{}))
	}
	if conf.EnablePprof {
		registerPprof(mux)
	}

	return &Server{
		conf:    conf,
		handler: mux,
		httpServer: &http.Server{
			Addr:              conf.Addr(),
			Handler:           mux,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

// registerPprof registers the pprof handlers. Named profiles like heap and
// goroutine are served by pprof.Index.
func registerPprof(mux *http.ServeMux) {
	mux.HandleFunc(pprofPath, pprof.Index)
	mux.HandleFunc(pprofPath+"cmdline", pprof.Cmdline)
	mux.HandleFunc(pprofPath+"profile", pprof.Profile)
	mux.HandleFunc(pprofPath+"symbol", pprof.Symbol)
	mux.HandleFunc(pprofPath+"trace", pprof.Trace)
}

// Start opens the profiling port and serves it in the background. It fails
// when the port cannot be opened.
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}

	go func() {
		logging.DefaultLogger().Infof("serving profiling on %d", s.conf.Port)

		if err := s.httpServer.Serve(lis); !errors.Is(err, http.ErrServerClosed) {
			logging.DefaultLogger().Errorf("profiling server: %v", err)
		}
	}()

	return nil
}

// Shutdown stops the server. In-flight requests finish first when graceful is
// true.
func (s *Server) Shutdown(graceful bool) {
	var err error
	if graceful {
		err = s.httpServer.Shutdown(context.Background())
	} else {
		err = s.httpServer.Close()
	}

	if err != nil {
		logging.DefaultLogger().Errorf("profiling server shutdown: %v", err)
	}
}
