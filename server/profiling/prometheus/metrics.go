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

// Package prometheus provides a Prometheus metrics exporter.
package prometheus

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/defra-forms/forms-manager/internal/version"
)

const (
	namespace   = "forms_manager"
	methodLabel = "method"
	routeLabel  = "route"
	codeLabel   = "code"
)

// Metrics manages the metric information that the forms manager measures.
type Metrics struct {
	registry *prometheus.Registry

	serverVersion        *prometheus.GaugeVec
	serverHandledCounter *prometheus.CounterVec
	serverHandledSeconds *prometheus.HistogramVec

	formsCreatedTotal  prometheus.Counter
	formsPromotedTotal prometheus.Counter
}

// NewMetrics creates a new instance of Metrics.
func NewMetrics() (*Metrics, error) {
	reg := prometheus.NewRegistry()

	if err := reg.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, fmt.Errorf("register process collector: %w", err)
	}
	if err := reg.Register(collectors.NewGoCollector()); err != nil {
		return nil, fmt.Errorf("register go collector: %w", err)
	}

	metrics := &Metrics{
		registry: reg,
		serverVersion: promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "server",
			Name:      "version",
			Help:      "Which version is running. 1 for 'server_version' label with current version.",
		}, []string{"server_version"}),
		serverHandledCounter: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "server_handled_total",
			Help:      "Total number of HTTP requests completed on the server, regardless of success or failure.",
		}, []string{methodLabel, routeLabel, codeLabel}),
		serverHandledSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "server_handled_seconds",
			Help:      "The response time of HTTP requests.",
		}, []string{methodLabel, routeLabel}),
		formsCreatedTotal: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "forms",
			Name:      "created_total",
			Help:      "The total count of forms created.",
		}),
		formsPromotedTotal: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "forms",
			Name:      "promoted_total",
			Help:      "The total count of draft definitions promoted to live.",
		}),
	}

	metrics.serverVersion.With(prometheus.Labels{
		"server_version": version.Version,
	}).Set(1)

	return metrics, nil
}

// AddServerHandledCounter adds the number of HTTP requests completed on the
// server.
func (m *Metrics) AddServerHandledCounter(method, route string, code int) {
	m.serverHandledCounter.With(prometheus.Labels{
		methodLabel: method,
		routeLabel:  route,
		codeLabel:   strconv.Itoa(code),
	}).Inc()
}

// ObserveServerHandledSeconds records the response time of an HTTP request.
func (m *Metrics) ObserveServerHandledSeconds(method, route string, seconds float64) {
	m.serverHandledSeconds.With(prometheus.Labels{
		methodLabel: method,
		routeLabel:  route,
	}).Observe(seconds)
}

// AddFormCreated increments the count of created forms.
func (m *Metrics) AddFormCreated() {
	m.formsCreatedTotal.Inc()
}

// AddFormPromoted increments the count of promoted definitions.
func (m *Metrics) AddFormPromoted() {
	m.formsPromotedTotal.Inc()
}

// Registry returns the registry of this metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
