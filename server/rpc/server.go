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

// Package rpc provides the HTTP API of the forms manager.
package rpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/defra-forms/forms-manager/server/backend"
	"github.com/defra-forms/forms-manager/server/logging"
)

// Server is a normal server that processes the logic requested by the client.
type Server struct {
	conf       *Config
	httpServer *http.Server
}

// NewServer creates a new instance of Server.
func NewServer(conf *Config, be *backend.Backend) (*Server, error) {
	return &Server{
		conf: conf,
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", conf.Port),
			Handler:      NewHandler(conf, be),
			ReadTimeout:  conf.ParseReadTimeout(),
			WriteTimeout: conf.ParseWriteTimeout(),
		},
	}, nil
}

// NewHandler returns the handler serving every route of the API.
func NewHandler(conf *Config, be *backend.Backend) http.Handler {
	mux := http.NewServeMux()
	registerFormsServer(mux, newFormsServer(be, conf.MaxRequestBytes))
	mux.HandleFunc("GET /health", handleHealth)
	mux.HandleFunc("GET /version", handleVersion)

	return newInterceptor(be).wrap(mux)
}

// Start starts this server by opening the HTTP port.
func (s *Server) Start() error {
	return s.listenAndServe()
}

// Shutdown shuts down this server.
func (s *Server) Shutdown(graceful bool) {
	if graceful {
		if err := s.httpServer.Shutdown(context.Background()); err != nil {
			logging.DefaultLogger().Errorf("HTTP server shutdown: %v", err)
		}
		return
	}

	if err := s.httpServer.Close(); err != nil {
		logging.DefaultLogger().Errorf("HTTP server close: %v", err)
	}
}

func (s *Server) listenAndServe() error {
	lis, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		logging.DefaultLogger().Error(err)
		return err
	}

	go func() {
		logging.DefaultLogger().Infof("serving HTTP on %d", s.conf.Port)

		if err := s.httpServer.Serve(lis); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logging.DefaultLogger().Error(err)
			}
		}
	}()

	return nil
}
