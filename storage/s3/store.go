// Copyright 2026 Inkwell AI
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package s3

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/inkwell-ai/docingest/storage"
)

// HeadAPI is the subset of the S3 client the store uses.
// Satisfied by *s3.Client.
type HeadAPI interface {
	HeadObject(ctx context.Context, params *awss3.HeadObjectInput, optFns ...func(*awss3.Options)) (*awss3.HeadObjectOutput, error)
}

// Store implements storage.ObjectStore over the S3 API.
type Store struct {
	client HeadAPI
}

// NewStore creates an object store backed by the given S3 client.
//
// Returns storage.ObjectStore to keep callers decoupled from the S3
// implementation.
func NewStore(client HeadAPI) (storage.ObjectStore, error) {
	if client == nil {
		return nil, errors.New("s3: client required")
	}
	return &Store{client: client}, nil
}

// HeadObject returns metadata for an object without reading its content.
func (s *Store) HeadObject(ctx context.Context, bucket, key string) (*storage.ObjectInfo, error) {
	out, err := s.client.HeadObject(ctx, &awss3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: s3://%s/%s", storage.ErrObjectNotFound, bucket, key)
		}
		return nil, fmt.Errorf("head object s3://%s/%s: %w", bucket, key, err)
	}

	info := &storage.ObjectInfo{
		Bucket:      bucket,
		Key:         key,
		Size:        aws.ToInt64(out.ContentLength),
		ETag:        aws.ToString(out.ETag),
		ContentType: aws.ToString(out.ContentType),
	}
	if out.LastModified != nil {
		info.LastModified = *out.LastModified
	}
	return info, nil
}
