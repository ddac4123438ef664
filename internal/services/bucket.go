package services

import (
  "context"
  "fmt"
  "os"

  "cloud.google.com/go/storage"
  "google.golang.org/api/option"

  "github.com/onlyfrogs/stylesync-backend/internal/logger"
)

// BucketService writes objects (clothing images, fit thumbnails, avatars) to
// the cloud storage bucket and hands back their public URL.
type BucketService interface {
  UploadObject(ctx context.Context, key string, data []byte, contentType string) (string, error)
  DeleteObject(ctx context.Context, key string) error
}

type bucketService struct {
  log        *logger.Logger
  client     *storage.Client
  bucketName string
}

func NewBucketService(ctx context.Context, log *logger.Logger) (BucketService, error) {
  serviceLog := log.With("service", "BucketService")
  bucketName := os.Getenv("STORAGE_BUCKET_NAME")
  if bucketName == "" {
    return nil, fmt.Errorf("missing STORAGE_BUCKET_NAME environment variable")
  }
  var opts []option.ClientOption
  if credsFile := os.Getenv("STORAGE_CREDENTIALS_FILE"); credsFile != "" {
    opts = append(opts, option.WithCredentialsFile(credsFile))
  }
  client, err := storage.NewClient(ctx, opts...)
  if err != nil {
    return nil, fmt.Errorf("failed to create storage client: %w", err)
  }
  return &bucketService{
    log:        serviceLog,
    client:     client,
    bucketName: bucketName,
  }, nil
}

func (bs *bucketService) UploadObject(ctx context.Context, key string, data []byte, contentType string) (string, error) {
  w := bs.client.Bucket(bs.bucketName).Object(key).NewWriter(ctx)
  w.ContentType = contentType
  if _, err := w.Write(data); err != nil {
    _ = w.Close()
    bs.log.Warn("failed writing object to bucket", "key", key, "error", err)
    return "", err
  }
  if err := w.Close(); err != nil {
    bs.log.Warn("failed closing bucket writer", "key", key, "error", err)
    return "", err
  }
  url := fmt.Sprintf("https://storage.googleapis.com/%s/%s", bs.bucketName, key)
  bs.log.Debug("Uploaded object to bucket", "key", key, "url", url)
  return url, nil
}

func (bs *bucketService) DeleteObject(ctx context.Context, key string) error {
  if err := bs.client.Bucket(bs.bucketName).Object(key).Delete(ctx); err != nil {
    bs.log.Warn("failed deleting object from bucket", "key", key, "error", err)
    return err
  }
  return nil
}
