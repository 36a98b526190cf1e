package content

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/illikainen/scaffold/src/configs"

	"github.com/illikainen/go-utils/src/errorx"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

type S3Fetcher struct {
	client *minio.Client
}

func NewS3Fetcher(config *configs.S3Config) (*S3Fetcher, error) {
	if config == nil {
		return nil, errors.Errorf("from_s3 content requires an s3 block in the configuration")
	}

	endpoint := strings.TrimSpace(config.Endpoint)
	if endpoint == "" {
		return nil, errors.Errorf("s3 endpoint is required")
	}

	var creds *credentials.Credentials
	if config.AccessKey != "" || config.SecretKey != "" {
		creds = credentials.NewStaticV4(config.AccessKey, config.SecretKey, "")
	} else {
		creds = credentials.NewEnvAWS()
	}

	secure := true
	if config.UseSSL != nil {
		secure = *config.UseSSL
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  creds,
		Secure: secure,
		Region: config.Region,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &S3Fetcher{client: client}, nil
}

func (f *S3Fetcher) Fetch(ctx context.Context, value string) (data []byte, err error) {
	bucket, key, err := ParseS3URL(value)
	if err != nil {
		return nil, err
	}

	obj, err := f.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, s3Error(value, err)
	}
	defer errorx.Defer(obj.Close, &err)

	// The request is sent on the first read.
	data, err = io.ReadAll(obj)
	if err != nil {
		return nil, s3Error(value, err)
	}

	return data, nil
}

func s3Error(value string, err error) error {
	resp := minio.ToErrorResponse(err)
	if resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket" {
		return errors.Errorf("%s: %s", value, resp.Message)
	}
	return errors.WithStack(err)
}

// ParseS3URL splits s3://bucket/key into its bucket and key.
func ParseS3URL(value string) (string, string, error) {
	u, err := url.Parse(value)
	if err != nil {
		return "", "", errors.WithStack(err)
	}

	key := strings.TrimPrefix(u.Path, "/")
	if u.Scheme != "s3" || u.Host == "" || key == "" {
		return "", "", errors.Errorf("%s is not a valid s3 url", value)
	}

	return u.Host, key, nil
}
