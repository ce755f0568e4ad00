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

// Package server provides the forms manager server, the main entry point of
// the system. It is responsible for starting the HTTP API and the profiling
// server on top of the backend.
package server

import (
	"context"
	gosync "sync"

	"github.com/defra-forms/forms-manager/server/backend"
	"github.com/defra-forms/forms-manager/server/profiling"
	"github.com/defra-forms/forms-manager/server/profiling/prometheus"
	"github.com/defra-forms/forms-manager/server/rpc"
)

// FormsManager is a server of the forms manager. It creates forms, serves
// their metadata and definitions, and promotes drafts to live.
type FormsManager struct {
	lock gosync.Mutex

	conf            *Config
	backend         *backend.Backend
	httpServer      *rpc.Server
	profilingServer *profiling.Server

	shutdown   bool
	shutdownCh chan struct{}
}

// New creates a new instance of FormsManager.
func New(conf *Config) (*FormsManager, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	metrics, err := prometheus.NewMetrics()
	if err != nil {
		return nil, err
	}

	be, err := backend.New(
		context.Background(),
		conf.Backend,
		conf.Mongo,
		conf.S3,
		conf.Kafka,
		metrics,
	)
	if err != nil {
		return nil, err
	}

	httpServer, err := rpc.NewServer(conf.HTTP, be)
	if err != nil {
		return nil, err
	}

	var profilingServer *profiling.Server
	if conf.Profiling != nil {
		profilingServer = profiling.NewServer(conf.Profiling, metrics)
	}

	return &FormsManager{
		conf:            conf,
		backend:         be,
		httpServer:      httpServer,
		profilingServer: profilingServer,
		shutdownCh:      make(chan struct{}),
	}, nil
}

// Start starts the server by opening the HTTP port.
func (m *FormsManager) Start() error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.profilingServer != nil {
		if err := m.profilingServer.Start(); err != nil {
			return err
		}
	}

	return m.httpServer.Start()
}

// Shutdown shuts down this server.
func (m *FormsManager) Shutdown(graceful bool) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	if m.shutdown {
		return nil
	}

	m.httpServer.Shutdown(graceful)
	if m.profilingServer != nil {
		m.profilingServer.Shutdown(graceful)
	}

	if err := m.backend.Shutdown(); err != nil {
		return err
	}

	close(m.shutdownCh)
	m.shutdown = true
	return nil
}

// ShutdownCh returns the shutdown channel.
func (m *FormsManager) ShutdownCh() <-chan struct{} {
	return m.shutdownCh
}

// HTTPAddr returns the address of the HTTP API.
func (m *FormsManager) HTTPAddr() string {
	return m.conf.HTTPAddr()
}
