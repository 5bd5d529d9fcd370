// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/csvscan/csvscan/internal/cacheutil"
	"github.com/csvscan/csvscan/internal/log"
)

// ObjectAPI is the slice of the S3 client the opener needs.
type ObjectAPI interface {
	HeadObject(ctx context.Context, in *s3v2.HeadObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.HeadObjectOutput, error)
	GetObject(ctx context.Context, in *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
}

// S3 opens s3://bucket/key locations.
//
// Fields:
//   - Profile, Region: override the shared config chain when non-empty.
//   - Endpoint: base URL of an S3-compatible service; enables path-style
//     addressing.
//   - CacheHours: cache entries older than this are purged before each open;
//     zero disables purging.
//   - Client: injected client; built lazily from the fields above when nil.
type S3 struct {
	Profile    string
	Region     string
	Endpoint   string
	CacheHours int
	Client     ObjectAPI

	once    sync.Once
	initErr error
}

// ParseS3 splits an s3://bucket/key location.
func ParseS3(location string) (bucket, key string, err error) {
	if !IsRemote(location) {
		return "", "", fmt.Errorf("not an s3 location: %s", location)
	}
	rest := strings.TrimPrefix(location, S3Scheme)
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("s3 location must be s3://bucket/key: %s", location)
	}
	return bucket, key, nil
}

// Open implements scan.Opener.
func (o *S3) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	bucket, key, err := ParseS3(location)
	if err != nil {
		return nil, err
	}

	client, err := o.client(ctx)
	if err != nil {
		return nil, err
	}

	if err := cacheutil.Purge(o.CacheHours); err != nil {
		log.WithError(err).Warn("failed to purge cache")
	}

	head, err := client.HeadObject(ctx, &s3v2.HeadObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to stat S3 object %s: %w", location, err)
	}

	etag := strings.Trim(awsv2.ToString(head.ETag), `"`)
	subdirs := []string{"s3", bucket}
	cacheKey := key + "@" + etag

	if etag != "" {
		if entry, ok := cacheutil.Read(subdirs, cacheKey); ok {
			return io.NopCloser(bytes.NewReader(entry.Data)), nil
		}
	}

	in := &s3v2.GetObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	}
	if etag != "" {
		in.IfMatch = head.ETag
	}
	result, err := client.GetObject(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("failed to get S3 object %s: %w", location, err)
	}
	log.Debugf("fetched s3 object: bucket=%s key=%s etag=%s", bucket, key, etag)

	if etag == "" {
		return result.Body, nil
	}

	defer result.Body.Close()
	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read S3 object body: %w", err)
	}
	if err := cacheutil.Write(subdirs, cacheKey, data); err != nil {
		log.WithError(err).Warn("failed to cache S3 object")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// client returns the injected client or builds one from the shell's AWS
// configuration on first use.
func (o *S3) client(ctx context.Context) (ObjectAPI, error) {
	o.once.Do(func() {
		if o.Client != nil {
			return
		}

		var loadOpts []func(*config.LoadOptions) error
		if o.Profile != "" {
			loadOpts = append(loadOpts, config.WithSharedConfigProfile(o.Profile))
		}
		if o.Region != "" {
			loadOpts = append(loadOpts, config.WithRegion(o.Region))
		}
		log.Debugf("loading aws config: profile=%s region=%s", o.Profile, o.Region)

		cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
		if err != nil {
			o.initErr = fmt.Errorf("failed to load AWS config: %w", err)
			return
		}

		var optFns []func(*s3v2.Options)
		if o.Endpoint != "" {
			endpoint := o.Endpoint
			optFns = append(optFns, func(so *s3v2.Options) {
				so.BaseEndpoint = awsv2.String(endpoint)
				so.UsePathStyle = true
			})
		}
		o.Client = s3v2.NewFromConfig(cfg, optFns...)
	})
	return o.Client, o.initErr
}
