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

// Package client provides the client of the forms manager HTTP API. The CLI
// uses it to manage forms on a running server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/defra-forms/forms-manager/api/types"
)

// ResponseError is returned when the server answers with an error. Code is
// the code of the error on the server, such as "ErrFormNotFound".
type ResponseError struct {
	StatusCode int
	Code       string
	Message    string
}

// Error returns the message of the error.
func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s (%d %s)", e.Message, e.StatusCode, e.Code)
}

// Client is a client of the forms manager.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// New creates an instance of Client talking to the server at the given
// address. An address without a scheme is served over plain HTTP.
func New(addr string, opts ...Option) (*Client, error) {
	var options Options
	for _, opt := range opts {
		opt(&options)
	}

	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}
	baseURL, err := url.Parse(addr)
	if err != nil {
		return nil, fmt.Errorf("parse server address %s: %w", addr, err)
	}

	httpClient := options.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.Timeout}
	}

	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL.String(), "/"),
		logger:     logger,
	}, nil
}

// ListForms returns the metadata of all forms.
func (c *Client) ListForms(ctx context.Context) ([]*types.FormMetadata, error) {
	var forms []*types.FormMetadata
	if err := c.do(ctx, http.MethodGet, "/forms", nil, &forms); err != nil {
		return nil, err
	}
	return forms, nil
}

// GetForm returns the metadata of the given form.
func (c *Client) GetForm(ctx context.Context, id string) (*types.FormMetadata, error) {
	var form types.FormMetadata
	if err := c.do(ctx, http.MethodGet, "/forms/"+url.PathEscape(id), nil, &form); err != nil {
		return nil, err
	}
	return &form, nil
}

// CreateForm creates a form and returns its id.
func (c *Client) CreateForm(ctx context.Context, fields *types.CreateFormFields) (string, error) {
	var resp types.FormStatusResponse
	if err := c.do(ctx, http.MethodPost, "/forms", fields, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// GetFormDefinition returns the draft definition of the given form.
func (c *Client) GetFormDefinition(ctx context.Context, id string) (types.FormDefinition, error) {
	var definition types.FormDefinition
	path := "/forms/" + url.PathEscape(id) + "/definition"
	if err := c.do(ctx, http.MethodGet, path, nil, &definition); err != nil {
		return nil, err
	}
	return definition, nil
}

// GetLiveFormDefinition returns the live definition of the given form.
func (c *Client) GetLiveFormDefinition(ctx context.Context, id string) (types.FormDefinition, error) {
	var definition types.FormDefinition
	path := "/forms/" + url.PathEscape(id) + "/definition/live"
	if err := c.do(ctx, http.MethodGet, path, nil, &definition); err != nil {
		return nil, err
	}
	return definition, nil
}

// PromoteDraftToLive promotes the draft definition of the given form to live.
func (c *Client) PromoteDraftToLive(ctx context.Context, id string) error {
	path := "/forms/" + url.PathEscape(id) + "/promote"
	return c.do(ctx, http.MethodPost, path, nil, &types.FormStatusResponse{})
}

// Health returns the health status of the server.
func (c *Client) Health(ctx context.Context) (string, error) {
	var resp types.HealthResponse
	if err := c.do(ctx, http.MethodGet, "/health", nil, &resp); err != nil {
		return "", err
	}
	return resp.Status, nil
}

// ServerVersion returns the version of the server.
func (c *Client) ServerVersion(ctx context.Context) (*types.VersionDetail, error) {
	var detail types.VersionDetail
	if err := c.do(ctx, http.MethodGet, "/version", nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn("close response body", zap.Error(err))
		}
	}()

	c.logger.Debug("request done",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
	)

	if resp.StatusCode >= http.StatusBadRequest {
		return toResponseError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response of %s %s: %w", method, path, err)
	}
	return nil
}

func toResponseError(resp *http.Response) error {
	respErr := &ResponseError{StatusCode: resp.StatusCode}

	var body types.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		respErr.Message = http.StatusText(resp.StatusCode)
		return respErr
	}

	respErr.Code = body.Code
	respErr.Message = body.Message
	return respErr
}
