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

// Package logging provides the structured loggers of the forms manager
// server. Loggers carry the id of the request and of the form being handled.
package logging

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logger used across the server.
type Logger = *zap.SugaredLogger

// Keys of the fields attached to the loggers of a request.
const (
	RequestIDKey = "request_id"
	FormIDKey    = "form_id"
)

var (
	level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

	defaultLogger = sync.OnceValue(func() Logger {
		return newLogger("forms-manager")
	})
)

// SetLogLevel sets the level of every logger of the server. It can be called
// after loggers have been created.
func SetLogLevel(l string) error {
	parsed, err := zapcore.ParseLevel(strings.ToLower(l))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", l, err)
	}

	level.SetLevel(parsed)
	return nil
}

// DefaultLogger returns the logger of the server.
func DefaultLogger() Logger {
	return defaultLogger()
}

// ForRequest returns a logger tagged with the id of a request.
func ForRequest(requestID string) Logger {
	return DefaultLogger().With(RequestIDKey, requestID)
}

func newLogger(name string) Logger {
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:        "T",
		LevelKey:       "L",
		NameKey:        "N",
		CallerKey:      "C",
		MessageKey:     "M",
		StacktraceKey:  "S",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	})

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level)
	return zap.New(core, zap.AddStacktrace(zap.ErrorLevel)).Named(name).Sugar()
}
