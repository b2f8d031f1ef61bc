package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"impilo/registry/internal/config"
	"impilo/registry/internal/ids"
)

type ObjectStore struct {
	client *minio.Client
	cfg    config.StorageConfig
}

func NewObjectStore(cfg config.StorageConfig) (*ObjectStore, error) {
	endpoint := cfg.Endpoint
	useSSL := cfg.UseSSL

	if strings.HasPrefix(endpoint, "http") {
		u, err := url.Parse(endpoint)
		if err != nil {
			return nil, fmt.Errorf("parse endpoint: %w", err)
		}
		endpoint = u.Host
		useSSL = u.Scheme == "https"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: useSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio: %w", err)
	}

	return &ObjectStore{
		client: client,
		cfg:    cfg,
	}, nil
}

func (s *ObjectStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.cfg.Bucket)
	if err != nil {
		return fmt.Errorf("bucket exists %s: %w", s.cfg.Bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.cfg.Bucket, minio.MakeBucketOptions{Region: s.cfg.Region}); err != nil {
			return fmt.Errorf("create bucket %s: %w", s.cfg.Bucket, err)
		}
	}
	return nil
}

// Put streams one uploaded file into the bucket and returns the raw storage
// URL. Callers rewrite it through the CDN locator before persisting.
func (s *ObjectStore) Put(ctx context.Context, reader io.Reader, size int64, filename, contentType string) (string, error) {
	objectKey := buildObjectKey(filename)

	options := minio.PutObjectOptions{
		ContentType: contentType,
	}

	if _, err := s.client.PutObject(ctx, s.cfg.Bucket, objectKey, reader, size, options); err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return s.objectURL(objectKey), nil
}

func (s *ObjectStore) objectURL(objectKey string) string {
	base := strings.TrimSuffix(s.cfg.Endpoint, "/")
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "https://" + base
	}
	return fmt.Sprintf("%s/%s/%s", base, s.cfg.Bucket, objectKey)
}

func buildObjectKey(filename string) string {
	ext := strings.TrimPrefix(path.Ext(filename), ".")
	datePrefix := time.Now().UTC().Format("2006/01/02")
	if ext == "" {
		return path.Join("registrations", datePrefix, ids.New())
	}
	return path.Join("registrations", datePrefix, fmt.Sprintf("%s.%s", ids.New(), ext))
}

func (s *ObjectStore) Client() *minio.Client {
	return s.client
}
