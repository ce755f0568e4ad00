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

// Package mongo implements database interfaces using MongoDB.
package mongo

import (
	"context"
	"errors"
	"fmt"
	gotime "time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/defra-forms/forms-manager/server/backend/database"
	"github.com/defra-forms/forms-manager/server/logging"
)

// Client is a client that connects to Mongo DB and reads or saves form
// metadata.
type Client struct {
	config *Config
	client *mongo.Client

	// formCache keeps the records found by id. Records are never updated,
	// so entries never go stale.
	formCache *lru.Cache[string, *database.FormInfo]
}

// Dial creates an instance of Client and dials the given MongoDB.
func Dial(conf *Config) (*Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), conf.ParseConnectionTimeout())
	defer cancel()

	client, err := mongo.Connect(
		options.Client().ApplyURI(conf.ConnectionURI),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	pingTimeout := conf.ParsePingTimeout()
	ctxPing, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(ctxPing, readpref.Primary()); err != nil {
		disconnect(client)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	if err := ensureIndexes(ctx, client.Database(conf.FormsDatabase)); err != nil {
		disconnect(client)
		return nil, err
	}

	formCache, err := lru.New[string, *database.FormInfo](conf.CacheSize)
	if err != nil {
		disconnect(client)
		return nil, fmt.Errorf("initialize form info cache: %w", err)
	}

	logging.DefaultLogger().Infof("MongoDB connected, URI: %s, DB: %s", conf.ConnectionURI, conf.FormsDatabase)

	return &Client{
		config:    conf,
		client:    client,
		formCache: formCache,
	}, nil
}

// disconnect releases the connection pool of a client that failed to set up.
func disconnect(client *mongo.Client) {
	if err := client.Disconnect(context.Background()); err != nil {
		logging.DefaultLogger().Warnf("disconnect mongo: %v", err)
	}
}

// Close all resources of this client.
func (c *Client) Close() error {
	if err := c.client.Disconnect(context.Background()); err != nil {
		return fmt.Errorf("close mongo client: %w", err)
	}

	c.formCache.Purge()

	return nil
}

// FormInfoExists returns whether a form with the given id exists.
func (c *Client) FormInfoExists(ctx context.Context, id string) (bool, error) {
	if c.formCache.Contains(id) {
		return true, nil
	}

	count, err := c.collection(ColForms).CountDocuments(
		ctx,
		bson.M{"id": id},
		options.Count().SetLimit(1),
	)
	if err != nil {
		return false, fmt.Errorf("count form %s: %w", id, err)
	}

	return count > 0, nil
}

// CreateFormInfo creates a new form record.
func (c *Client) CreateFormInfo(
	ctx context.Context,
	info *database.FormInfo,
) (*database.FormInfo, error) {
	created := info.DeepCopy()
	if created.CreatedAt.IsZero() {
		created.CreatedAt = gotime.Now()
	}

	if _, err := c.collection(ColForms).InsertOne(ctx, created); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("create form %s: %w", info.ID, database.ErrFormInfoAlreadyExists)
		}

		return nil, fmt.Errorf("create form info: %w", err)
	}

	return created, nil
}

// FindFormInfoByID returns the form of the given id.
func (c *Client) FindFormInfoByID(ctx context.Context, id string) (*database.FormInfo, error) {
	if cached, ok := c.formCache.Get(id); ok {
		return cached.DeepCopy(), nil
	}

	result := c.collection(ColForms).FindOne(ctx, bson.M{
		"id": id,
	})

	info := &database.FormInfo{}
	if err := result.Decode(info); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("find form %s: %w", id, database.ErrFormInfoNotFound)
		}
		return nil, fmt.Errorf("decode form info: %w", err)
	}

	c.formCache.Add(id, info.DeepCopy())

	return info, nil
}

// ListFormInfos returns all forms in insertion order. Documents that do not
// decode into a record with an id are skipped.
func (c *Client) ListFormInfos(ctx context.Context) ([]*database.FormInfo, error) {
	cursor, err := c.collection(ColForms).Find(
		ctx,
		bson.M{},
		options.Find().SetSort(bson.D{{Key: "_id", Value: int32(1)}}),
	)
	if err != nil {
		return nil, fmt.Errorf("list form infos: %w", err)
	}

	defer func() {
		if err := cursor.Close(ctx); err != nil {
			logging.From(ctx).Warnf("close form infos cursor: %v", err)
		}
	}()

	infos := []*database.FormInfo{}
	for cursor.Next(ctx) {
		info := &database.FormInfo{}
		if err := cursor.Decode(info); err != nil {
			logging.From(ctx).Warnf("skip malformed form record %s: %v", cursor.Current.Lookup("_id"), err)
			continue
		}
		if info.ID == "" {
			logging.From(ctx).Warnf("skip form record %s without id", cursor.Current.Lookup("_id"))
			continue
		}

		infos = append(infos, info)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("fetch all form infos: %w", err)
	}

	return infos, nil
}

func (c *Client) collection(
	name string,
	opts ...options.Lister[options.CollectionOptions],
) *mongo.Collection {
	return c.client.
		Database(c.config.FormsDatabase).
		Collection(name, opts...)
}
