package genome

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Storage is the cache backend a Genome reads and writes through.
// Backends exist for the local filesystem and for S3.
type Storage interface {
	// ReadFile reads a file relative to the base path.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes a file, creating parent directories as needed.
	WriteFile(path string, data []byte) error

	// Exists checks if a file exists.
	Exists(path string) (bool, error)

	// Remove deletes a single file.
	Remove(path string) error

	// RemoveAll deletes a whole subtree.
	RemoveAll(path string) error

	// List lists files under a prefix.
	List(prefix string) ([]string, error)

	// BasePath returns the base path.
	BasePath() string
}

// NewStorage creates the appropriate backend for a cache location:
// paths starting with s3:// get the S3 backend, everything else the
// local filesystem.
func NewStorage(path string) (Storage, error) {
	if strings.HasPrefix(path, "s3://") {
		return NewS3Storage(path)
	}
	return NewLocalStorage(path), nil
}

// LocalStorage implements Storage on the local filesystem.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a local cache backend rooted at basePath.
func NewLocalStorage(basePath string) *LocalStorage {
	return &LocalStorage{basePath: basePath}
}

func (s *LocalStorage) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.basePath, path))
}

func (s *LocalStorage) WriteFile(path string, data []byte) error {
	fullPath := filepath.Join(s.basePath, path)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, data, 0644)
}

func (s *LocalStorage) Exists(path string) (bool, error) {
	_, err := os.Stat(filepath.Join(s.basePath, path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (s *LocalStorage) Remove(path string) error {
	return os.Remove(filepath.Join(s.basePath, path))
}

func (s *LocalStorage) RemoveAll(path string) error {
	return os.RemoveAll(filepath.Join(s.basePath, path))
}

func (s *LocalStorage) List(prefix string) ([]string, error) {
	root := filepath.Join(s.basePath, prefix)
	var files []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if !info.IsDir() {
			rel, err := filepath.Rel(s.basePath, path)
			if err != nil {
				return err
			}
			files = append(files, filepath.ToSlash(rel))
		}
		return nil
	})
	return files, err
}

func (s *LocalStorage) BasePath() string {
	return s.basePath
}

// S3Storage implements Storage on an S3 bucket. The cache location is
// given as s3://bucket/prefix.
type S3Storage struct {
	bucket     string
	prefix     string
	client     *s3.Client
	uploader   *manager.Uploader
	downloader *manager.Downloader
	ctx        context.Context
}

// NewS3Storage creates an S3 cache backend from an s3://bucket/prefix
// location, using the ambient AWS configuration.
func NewS3Storage(path string) (*S3Storage, error) {
	if !strings.HasPrefix(path, "s3://") {
		return nil, fmt.Errorf("invalid S3 path: %s (must start with s3://)", path)
	}

	trimmed := strings.TrimPrefix(path, "s3://")
	parts := strings.SplitN(trimmed, "/", 2)
	bucket := parts[0]
	prefix := ""
	if len(parts) > 1 {
		prefix = strings.TrimSuffix(parts[1], "/")
	}

	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	client := s3.NewFromConfig(cfg)

	return &S3Storage{
		bucket:     bucket,
		prefix:     prefix,
		client:     client,
		uploader:   manager.NewUploader(client),
		downloader: manager.NewDownloader(client),
		ctx:        ctx,
	}, nil
}

func (s *S3Storage) key(path string) string {
	path = filepath.ToSlash(path)
	if path == "" || path == "." {
		return s.prefix
	}
	if s.prefix == "" {
		return path
	}
	return s.prefix + "/" + path
}

func (s *S3Storage) ReadFile(path string) ([]byte, error) {
	buf := manager.NewWriteAtBuffer([]byte{})
	_, err := s.downloader.Download(s.ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(path)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to download s3://%s/%s: %w", s.bucket, s.key(path), err)
	}
	return buf.Bytes(), nil
}

func (s *S3Storage) WriteFile(path string, data []byte) error {
	_, err := s.uploader.Upload(s.ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(path)),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return fmt.Errorf("failed to upload to s3://%s/%s: %w", s.bucket, s.key(path), err)
	}
	return nil
}

func (s *S3Storage) Exists(path string) (bool, error) {
	_, err := s.client.HeadObject(s.ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(path)),
	})
	if err != nil {
		if strings.Contains(err.Error(), "NotFound") || strings.Contains(err.Error(), "404") {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *S3Storage) Remove(path string) error {
	_, err := s.client.DeleteObject(s.ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(path)),
	})
	return err
}

func (s *S3Storage) RemoveAll(path string) error {
	files, err := s.List(path)
	if err != nil {
		return err
	}
	for _, f := range files {
		if err := s.Remove(f); err != nil {
			return err
		}
	}
	return nil
}

func (s *S3Storage) List(prefix string) ([]string, error) {
	var files []string
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.key(prefix)),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(s.ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if s.prefix != "" {
				key = strings.TrimPrefix(key, s.prefix+"/")
			}
			files = append(files, key)
		}
	}
	return files, nil
}

func (s *S3Storage) BasePath() string {
	if s.prefix == "" {
		return fmt.Sprintf("s3://%s", s.bucket)
	}
	return fmt.Sprintf("s3://%s/%s", s.bucket, s.prefix)
}
