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

// Package s3 implements the storage client on top of Amazon S3 or any
// S3-compatible object store.
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/gabriel-vasile/mimetype"

	"github.com/defra-forms/forms-manager/server/backend/storage"
	"github.com/defra-forms/forms-manager/server/logging"
)

// API is the subset of the S3 API used by the client.
type API interface {
	PutObject(
		ctx context.Context,
		params *awss3.PutObjectInput,
		optFns ...func(*awss3.Options),
	) (*awss3.PutObjectOutput, error)

	GetObject(
		ctx context.Context,
		params *awss3.GetObjectInput,
		optFns ...func(*awss3.Options),
	) (*awss3.GetObjectOutput, error)

	CopyObject(
		ctx context.Context,
		params *awss3.CopyObjectInput,
		optFns ...func(*awss3.Options),
	) (*awss3.CopyObjectOutput, error)
}

// Client is a storage client backed by an S3 bucket.
type Client struct {
	api    API
	bucket string
}

// Dial creates a new S3 client. Credentials are loaded from the default AWS
// credential chain.
func Dial(ctx context.Context, conf *Config) (*Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(conf.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	var opts []func(*awss3.Options)
	if conf.Endpoint != "" {
		opts = append(opts, func(o *awss3.Options) {
			o.BaseEndpoint = aws.String(conf.Endpoint)
		})
	}
	if conf.ForcePathStyle {
		opts = append(opts, func(o *awss3.Options) {
			o.UsePathStyle = true
		})
	}

	logging.DefaultLogger().Infof(
		"S3 storage created: bucket %q, region %q",
		conf.Bucket,
		conf.Region,
	)

	return New(awss3.NewFromConfig(cfg, opts...), conf.Bucket), nil
}

// New creates a new client with the given API implementation.
func New(api API, bucket string) *Client {
	return &Client{
		api:    api,
		bucket: bucket,
	}
}

// Put stores the data at the given key.
func (c *Client) Put(ctx context.Context, key string, data []byte) error {
	if _, err := c.api.PutObject(ctx, &awss3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mimetype.Detect(data).String()),
	}); err != nil {
		return toStorageError("put", key, err)
	}

	return nil
}

// Get returns the data stored at the given key. An object without a body is
// returned as empty data.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	output, err := c.api.GetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, toStorageError("get", key, err)
	}
	if output.Body == nil {
		return nil, nil
	}
	defer func() {
		_ = output.Body.Close()
	}()

	data, err := io.ReadAll(output.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}

	return data, nil
}

// Copy copies the object at src to dst on the server side.
func (c *Client) Copy(ctx context.Context, src, dst string) error {
	if _, err := c.api.CopyObject(ctx, &awss3.CopyObjectInput{
		Bucket:     aws.String(c.bucket),
		CopySource: aws.String(copySource(c.bucket, src)),
		Key:        aws.String(dst),
	}); err != nil {
		return toStorageError("copy", src, err)
	}

	return nil
}

// copySource returns the URL-encoded source of a copy: the bucket followed by
// the key, each path segment escaped.
func copySource(bucket, key string) string {
	segments := strings.Split(key, "/")
	for i, segment := range segments {
		segments[i] = strings.ReplaceAll(url.PathEscape(segment), "+", "%2B")
	}

	return url.PathEscape(bucket) + "/" + strings.Join(segments, "/")
}

// toStorageError converts a missing object into storage.ErrObjectNotFound and
// wraps every other error with the operation and the key.
func toStorageError(op, key string, err error) error {
	var noSuchKey *s3types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return fmt.Errorf("%s %s: %w", op, key, storage.ErrObjectNotFound)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return fmt.Errorf("%s %s: %w", op, key, storage.ErrObjectNotFound)
		}
	}

	return fmt.Errorf("%s %s: %w", op, key, err)
}
