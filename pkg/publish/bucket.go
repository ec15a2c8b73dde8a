// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package publish uploads exported schedules to an Amazon S3 bucket.
package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/sirupsen/logrus"
)

// ErrNoAccess is returned by Init when the bucket is missing or the
// credentials do not allow using it.
var ErrNoAccess = errors.New("publish: bucket not accessible")

// Content types of the exported files.
const (
	ContentTypeCSV  = "text/csv; charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypeJSON = "application/json"
)

// Bucket uploads files to a prefix inside an Amazon S3 bucket.
type Bucket struct {
	// Config is the AWS configuration, loaded by Init.
	Config aws.Config

	// Client is initialized by Init from Config. Callers may replace it
	// with their own client before calling Put.
	Client *s3.Client

	name   string
	prefix string

	ctx context.Context
}

// New returns a Bucket uploading to the given prefix of the named bucket.
// Init must be called on the Bucket before use.
func New(ctx context.Context, name, prefix string) *Bucket {
	return &Bucket{
		ctx:    ctx,
		name:   name,
		prefix: strings.Trim(prefix, "/"),
	}
}

// Name returns the name of the bucket.
func (b *Bucket) Name() string {
	return b.name
}

// Init loads the default AWS configuration, from the environment and the
// shared configuration files, and checks that the bucket is reachable.
func (b *Bucket) Init() error {
	var err error
	b.Config, err = config.LoadDefaultConfig(b.ctx)
	if err != nil {
		return fmt.Errorf("publish: load aws config: %w", err)
	}

	b.Client = s3.NewFromConfig(b.Config)

	if _, err = b.Client.HeadBucket(b.ctx, &s3.HeadBucketInput{
		Bucket: aws.String(b.name),
	}); err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			switch apiErr.ErrorCode() {
			case "NotFound", "NoSuchBucket", "Forbidden", "AccessDenied":
				return fmt.Errorf("%w: %s: %s", ErrNoAccess, b.name, apiErr.ErrorCode())
			}
		}

		return fmt.Errorf("publish: head bucket %s: %w", b.name, err)
	}

	return nil
}

// Key returns the object key a file with the given name is stored at.
func (b *Bucket) Key(name string) string {
	if b.prefix == "" {
		return name
	}

	return path.Join(b.prefix, name)
}

// URI returns the s3:// address of the given file.
func (b *Bucket) URI(name string) string {
	return "s3://" + b.name + "/" + b.Key(name)
}

// Put uploads data as the named file.
func (b *Bucket) Put(name, contentType string, data []byte) error {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(b.name),
		Key:         aws.String(b.Key(name)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	}

	if _, err := b.Client.PutObject(b.ctx, input); err != nil {
		return fmt.Errorf("publish: put %s: %w", b.URI(name), err)
	}

	logrus.WithFields(logrus.Fields{
		"bucket": b.name,
		"key":    *input.Key,
		"size":   len(data),
	}).Debug("uploaded file")
	return nil
}
