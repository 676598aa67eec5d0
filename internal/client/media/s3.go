package media

import (
	"bytes"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/aiwallpaper/internal/client/models"
	"github.com/oklog/ulid/v2"
)

// ErrExportDisabled is returned when no bucket is configured.
var ErrExportDisabled = errors.New("export is not configured")

const anonymousOwner = "anonymous"

// PutObjectAPI is the subset of *s3.Client used by S3Exporter.
type PutObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Options configures the S3 client built by NewS3Client.
type S3Options struct {
	Bucket          string
	Region          string
	Endpoint        string
	KeyPrefix       string
	AccessKeyID     string
	SecretAccessKey string
}

var loadDefaultAWSConfig = config.LoadDefaultConfig

// NewS3Client builds an S3 client. Static credentials are used when both keys
// are set; otherwise the default AWS credential chain applies. A custom
// endpoint switches to path-style addressing for S3-compatible stores.
func NewS3Client(ctx context.Context, opts S3Options) (*s3.Client, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(opts.Region),
	}
	if opts.AccessKeyID != "" && opts.SecretAccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}

	cfg, err := loadDefaultAWSConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// S3Exporter uploads wallpapers to a bucket.
type S3Exporter struct {
	api    PutObjectAPI
	bucket string
	prefix string
	now    func() time.Time
}

func NewS3Exporter(api PutObjectAPI, bucket, prefix string) *S3Exporter {
	return &S3Exporter{api: api, bucket: bucket, prefix: prefix, now: time.Now}
}

// Key returns the object key for an export: <prefix>/<owner>/<ulid>-<name>.
func (e *S3Exporter) Key(owner, prompt, mimeType string) string {
	if owner == "" {
		owner = anonymousOwner
	}
	id := ulid.MustNew(ulid.Timestamp(e.now()), rand.Reader)
	return path.Join(e.prefix, owner, id.String()+"-"+FileName(prompt, mimeType))
}

// Export uploads img and returns its s3:// location.
func (e *S3Exporter) Export(ctx context.Context, owner, prompt string, img models.Image) (string, error) {
	if e == nil || e.bucket == "" {
		return "", ErrExportDisabled
	}

	raw, err := img.Bytes()
	if err != nil {
		return "", err
	}

	key := e.Key(owner, prompt, img.MIMEType)
	_, err = e.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(e.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(raw),
		ContentType: aws.String(img.MIMEType),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return fmt.Sprintf("s3://%s/%s", e.bucket, key), nil
}
