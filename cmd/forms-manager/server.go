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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/defra-forms/forms-manager/server"
	"github.com/defra-forms/forms-manager/server/backend"
	"github.com/defra-forms/forms-manager/server/backend/database/mongo"
	"github.com/defra-forms/forms-manager/server/backend/messagebroker"
	"github.com/defra-forms/forms-manager/server/backend/storage/s3"
	"github.com/defra-forms/forms-manager/server/logging"
)

var (
	gracefulTimeout = 10 * time.Second
)

var (
	flagConfPath string
	flagLogLevel string

	httpReadTimeout  time.Duration
	httpWriteTimeout time.Duration

	mongoConnectionURI     string
	mongoConnectionTimeout time.Duration
	mongoFormsDatabase     string
	mongoPingTimeout       time.Duration
	mongoCacheSize         int

	s3Bucket         string
	s3Region         string
	s3Endpoint       string
	s3ForcePathStyle bool

	kafkaAddresses    string
	kafkaTopic        string
	kafkaWriteTimeout time.Duration

	conf = server.NewConfig()
)

func newServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "server [options]",
		Short: "Start the forms manager server",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf.HTTP.ReadTimeout = httpReadTimeout.String()
			conf.HTTP.WriteTimeout = httpWriteTimeout.String()

			if conf.Backend.MetadataStore == backend.StoreMongo || mongoConnectionURI != "" {
				uri := mongoConnectionURI
				if uri == "" {
					uri = server.DefaultMongoConnectionURI
				}
				conf.Mongo = &mongo.Config{
					ConnectionURI:     uri,
					ConnectionTimeout: mongoConnectionTimeout.String(),
					FormsDatabase:     mongoFormsDatabase,
					PingTimeout:       mongoPingTimeout.String(),
					CacheSize:         mongoCacheSize,
				}
			}

			if conf.Backend.DefinitionStore == backend.StoreS3 || s3Bucket != "" {
				conf.S3 = &s3.Config{
					Bucket:         s3Bucket,
					Region:         s3Region,
					Endpoint:       s3Endpoint,
					ForcePathStyle: s3ForcePathStyle,
				}
			}

			if kafkaAddresses != "" {
				conf.Kafka = &messagebroker.Config{
					Addresses:    kafkaAddresses,
					Topic:        kafkaTopic,
					WriteTimeout: kafkaWriteTimeout.String(),
				}
			}

			// If config file is given, command-line arguments will be overwritten.
			if flagConfPath != "" {
				parsed, err := server.NewConfigFromFile(flagConfPath)
				if err != nil {
					return err
				}
				conf = parsed
			}

			if err := logging.SetLogLevel(flagLogLevel); err != nil {
				return err
			}

			fm, err := server.New(conf)
			if err != nil {
				return err
			}

			if err := fm.Start(); err != nil {
				return err
			}

			if code := handleSignal(fm); code != 0 {
				return fmt.Errorf("exit code: %d", code)
			}

			return nil
		},
	}
}

func handleSignal(fm *server.FormsManager) int {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	var sig os.Signal
	select {
	case s := <-sigCh:
		sig = s
	case <-fm.ShutdownCh():
		// the server is already shutdown
		return 0
	}

	graceful := false
	if sig == syscall.SIGINT || sig == syscall.SIGTERM {
		graceful = true
	}

	gracefulCh := make(chan struct{})
	go func() {
		if err := fm.Shutdown(graceful); err != nil {
			logging.DefaultLogger().Error(err)
			return
		}
		close(gracefulCh)
	}()

	select {
	case <-sigCh:
		return 1
	case <-time.After(gracefulTimeout):
		return 1
	case <-gracefulCh:
		return 0
	}
}

func init() {
	cmd := newServerCmd()
	cmd.Flags().StringVarP(
		&flagConfPath,
		"config",
		"c",
		"",
		"Config path",
	)
	cmd.Flags().StringVarP(
		&flagLogLevel,
		"log-level",
		"l",
		"info",
		"Log level: debug, info, warn, error, panic, fatal",
	)
	cmd.Flags().IntVar(
		&conf.HTTP.Port,
		"http-port",
		server.DefaultHTTPPort,
		"HTTP port",
	)
	cmd.Flags().DurationVar(
		&httpReadTimeout,
		"http-read-timeout",
		server.DefaultHTTPReadTimeout,
		"Maximum duration for reading an entire request.",
	)
	cmd.Flags().DurationVar(
		&httpWriteTimeout,
		"http-write-timeout",
		server.DefaultHTTPWriteTimeout,
		"Maximum duration before timing out writes of a response.",
	)
	cmd.Flags().Int64Var(
		&conf.HTTP.MaxRequestBytes,
		"http-max-request-bytes",
		server.DefaultHTTPMaxRequestBytes,
		"Maximum client request size in bytes the server will accept.",
	)
	cmd.Flags().IntVar(
		&conf.Profiling.Port,
		"profiling-port",
		server.DefaultProfilingPort,
		"Profiling port",
	)
	cmd.Flags().BoolVar(
		&conf.Profiling.EnablePprof,
		"enable-pprof",
		false,
		"Enable runtime profiling data via HTTP server.",
	)
	cmd.Flags().StringVar(
		&conf.Backend.MetadataStore,
		"metadata-store",
		server.DefaultMetadataStore,
		"Store of form metadata: memory, mongo or filesystem",
	)
	cmd.Flags().StringVar(
		&conf.Backend.MetadataDirectory,
		"metadata-dir",
		"",
		"Directory of the filesystem metadata store",
	)
	cmd.Flags().StringVar(
		&conf.Backend.DefinitionStore,
		"definition-store",
		server.DefaultDefinitionStore,
		"Store of form definitions: memory, filesystem or s3",
	)
	cmd.Flags().StringVar(
		&conf.Backend.DefinitionFilesystemRoot,
		"definition-root",
		"",
		"Local directory of the filesystem definition store",
	)
	cmd.Flags().StringVar(
		&conf.Backend.DefinitionDirectory,
		"definition-dir",
		server.DefaultDefinitionDirectory,
		"Directory, or key prefix, of draft and live definitions",
	)
	cmd.Flags().StringVar(
		&mongoConnectionURI,
		"mongo-connection-uri",
		"",
		"MongoDB's connection URI",
	)
	cmd.Flags().DurationVar(
		&mongoConnectionTimeout,
		"mongo-connection-timeout",
		server.DefaultMongoConnectionTimeout,
		"Mongo DB's connection timeout",
	)
	cmd.Flags().StringVar(
		&mongoFormsDatabase,
		"mongo-forms-database",
		server.DefaultMongoFormsDatabase,
		"Forms manager's database name in MongoDB",
	)
	cmd.Flags().DurationVar(
		&mongoPingTimeout,
		"mongo-ping-timeout",
		server.DefaultMongoPingTimeout,
		"Mongo DB's ping timeout",
	)
	cmd.Flags().IntVar(
		&mongoCacheSize,
		"mongo-cache-size",
		server.DefaultMongoCacheSize,
		"The cache size of form metadata read from MongoDB.",
	)
	cmd.Flags().StringVar(
		&s3Bucket,
		"s3-bucket",
		"",
		"S3 bucket of form definitions",
	)
	cmd.Flags().StringVar(
		&s3Region,
		"s3-region",
		server.DefaultS3Region,
		"AWS region of the S3 bucket",
	)
	cmd.Flags().StringVar(
		&s3Endpoint,
		"s3-endpoint",
		"",
		"Custom S3 endpoint, such as a LocalStack URL",
	)
	cmd.Flags().BoolVar(
		&s3ForcePathStyle,
		"s3-force-path-style",
		false,
		"Use path-style addressing for S3",
	)
	cmd.Flags().StringVar(
		&kafkaAddresses,
		"kafka-addresses",
		"",
		"Comma-separated list of Kafka brokers form events are published to",
	)
	cmd.Flags().StringVar(
		&kafkaTopic,
		"kafka-topic",
		server.DefaultKafkaTopic,
		"Kafka topic of form events",
	)
	cmd.Flags().DurationVar(
		&kafkaWriteTimeout,
		"kafka-write-timeout",
		server.DefaultKafkaWriteTimeout,
		"Timeout of writing a form event to Kafka",
	)

	rootCmd.AddCommand(cmd)
}
