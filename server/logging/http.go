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

package logging

import (
	"net/http"
	"time"

	"github.com/rs/xid"
	"go.uber.org/zap"
)

// HTTPLogLevel represents the severity level for HTTP request logging
type HTTPLogLevel int

const (
	HTTPLogDebug HTTPLogLevel = iota
	HTTPLogInfo
	HTTPLogWarn
	HTTPLogError
)

// String returns the string representation of HTTPLogLevel
func (l HTTPLogLevel) String() string {
	switch l {
	case HTTPLogDebug:
		return "debug"
	case HTTPLogInfo:
		return "info"
	case HTTPLogError:
		return "error"
	}
	return "warn"
}

// toHTTPLogLevel determines the log level of a request from its response
// status code.
func toHTTPLogLevel(status int) HTTPLogLevel {
	switch {
	case status < http.StatusBadRequest:
		return HTTPLogDebug
	case status == http.StatusBadRequest,
		status == http.StatusNotFound,
		status == http.StatusConflict:
		// Client-side errors - usually expected validation errors
		return HTTPLogInfo
	case status < http.StatusInternalServerError:
		return HTTPLogWarn
	default:
		return HTTPLogError
	}
}

// NewRequestID returns a new globally unique request id.
func NewRequestID() string {
	return xid.New().String()
}

// LogHTTPRequest logs a handled request with the level of its status code.
func LogHTTPRequest(
	logger *zap.SugaredLogger,
	method string,
	path string,
	status int,
	duration time.Duration,
) {
	const template = "HTTP : %s %q %d %s"

	switch toHTTPLogLevel(status) {
	case HTTPLogDebug:
		logger.Debugf(template, method, path, status, duration)
	case HTTPLogInfo:
		logger.Infof(template, method, path, status, duration)
	case HTTPLogError:
		logger.Errorf(template, method, path, status, duration)
	default:
		logger.Warnf(template, method, path, status, duration)
	}
}
