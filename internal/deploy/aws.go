package deploy

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3API is the subset of the S3 SDK client used by AWSS3Client.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// AWSS3Client implements S3Client using the AWS SDK v2.
type AWSS3Client struct {
	client s3API
	bucket string
}

// NewAWSS3Client creates a new AWSS3Client.
func NewAWSS3Client(client s3API, bucket string) *AWSS3Client {
	return &AWSS3Client{client: client, bucket: bucket}
}

// DefaultS3Client builds an AWSS3Client from the ambient AWS credential
// chain for the given region and bucket.
func DefaultS3Client(ctx context.Context, region, bucket string) (*AWSS3Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	return NewAWSS3Client(s3.NewFromConfig(awsCfg), bucket), nil
}

// PutObject uploads an object with the given key and content type, storing
// the SHA-256 hash as object metadata for later change detection.
func (c *AWSS3Client) PutObject(ctx context.Context, key string, body io.Reader, contentType, sha256Hash string) error {
	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
		Metadata: map[string]string{
			"sha256": sha256Hash,
		},
	})
	if err != nil {
		return fmt.Errorf("s3 PutObject %q: %w", key, err)
	}
	return nil
}

// ListObjects lists the objects under prefix and returns a map of
// key -> change-detection hash.
func (c *AWSS3Client) ListObjects(ctx context.Context, prefix string) (map[string]string, error) {
	result := make(map[string]string)

	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(c.bucket),
	}
	if prefix != "" {
		input.Prefix = aws.String(prefix)
	}

	for {
		out, err := c.client.ListObjectsV2(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("s3 ListObjectsV2: %w", err)
		}

		for _, obj := range out.Contents {
			key := aws.ToString(obj.Key)
			// Use ETag as a change-detection hash (stripped of quotes).
			etag := aws.ToString(obj.ETag)
			if len(etag) >= 2 && etag[0] == '"' && etag[len(etag)-1] == '"' {
				etag = etag[1 : len(etag)-1]
			}
			result[key] = etag
		}

		if !aws.ToBool(out.IsTruncated) {
			break
		}
		input.ContinuationToken = out.NextContinuationToken
	}

	return result, nil
}
