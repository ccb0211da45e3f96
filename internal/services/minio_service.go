package services

import (
	"context"
	"fmt"
	"mime"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	"faq-backend/internal/config"
	"faq-backend/internal/models"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// ObjectStorage removes stored assets such as replaced category logos.
type ObjectStorage interface {
	DeleteFile(ctx context.Context, objectPath string) error
}

type MinIOService struct {
	client    *minio.Client
	bucket    string
	publicURL string
	prefix    string
	expiry    time.Duration
	logger    *logrus.Logger
}

func NewMinIOService(cfg *config.MinIOConfig, logger *logrus.Logger) (*MinIOService, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("MinIO client initialized successfully")

	service := &MinIOService{
		client:    minioClient,
		bucket:    cfg.BucketName,
		publicURL: cfg.PublicURL,
		prefix:    strings.Trim(cfg.LogoPrefix, "/"),
		expiry:    cfg.PresignExpiry,
		logger:    logger,
	}

	if err := service.ensureBucket(context.Background(), cfg.Region); err != nil {
		logger.WithError(err).Warn("Failed to configure bucket, but continuing...")
	}

	return service, nil
}

// ensureBucket creates the bucket and opens the logo prefix for anonymous reads.
func (s *MinIOService) ensureBucket(ctx context.Context, region string) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Bucket created successfully")
	}

	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/%s/*"]
			}
		]
	}`, s.bucket, s.prefix)

	if err := s.client.SetBucketPolicy(ctx, s.bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	s.logger.WithFields(logrus.Fields{"bucket": s.bucket, "prefix": s.prefix}).Info("Bucket policy set to public read")
	return nil
}

// GeneratePresignedURL reserves a unique object name for a logo upload.
func (s *MinIOService) GeneratePresignedURL(ctx context.Context, filename, contentType string) (*models.UploadTicket, error) {
	objectPath, err := logoObjectPath(s.prefix, filename, contentType)
	if err != nil {
		return nil, err
	}

	presignedURL, err := s.client.PresignedPutObject(ctx, s.bucket, objectPath, s.expiry)
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate presigned URL")
		return nil, fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	publicURL := publicObjectURL(s.publicURL, s.bucket, objectPath)

	s.logger.WithFields(logrus.Fields{
		"filename":   filename,
		"objectPath": objectPath,
		"expiry":     s.expiry,
	}).Info("Generated presigned URL")

	return &models.UploadTicket{
		PresignedURL: presignedURL.String(),
		PublicURL:    publicURL,
		File: models.FileData{
			ID:      objectPath,
			Storage: "s3",
			Metadata: models.FileMetadata{
				Filename: filename,
				MimeType: contentType,
			},
			URLs: models.FileURLs{Original: publicURL},
		},
		ExpiresAt: time.Now().UTC().Add(s.expiry),
	}, nil
}

func (s *MinIOService) DeleteFile(ctx context.Context, objectPath string) error {
	objectPath = objectPathFromURL(objectPath, s.bucket)

	err := s.client.RemoveObject(ctx, s.bucket, objectPath, minio.RemoveObjectOptions{})
	if err != nil {
		s.logger.WithError(err).WithField("objectPath", objectPath).Error("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	s.logger.WithField("objectPath", objectPath).Info("File deleted successfully from MinIO")
	return nil
}

func logoObjectPath(prefix, filename, contentType string) (string, error) {
	filename = filepath.Base(strings.TrimSpace(filename))
	if filename == "" || filename == "." || filename == "/" {
		return "", validationError("filename is required")
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "image/") {
		return "", validationError("content type %q is not an image", contentType)
	}

	ext := filepath.Ext(filename)
	name := strings.TrimSuffix(filename, ext)
	unique := fmt.Sprintf("%s_%s%s", name, uuid.New().String()[:8], strings.ToLower(ext))

	return path.Join(prefix, unique), nil
}

func publicObjectURL(publicURL, bucket, objectPath string) string {
	base := strings.TrimPrefix(publicURL, "https://")
	base = strings.TrimPrefix(base, "http://")
	if idx := strings.Index(base, "/"); idx != -1 {
		base = base[:idx]
	}

	protocol := "http://"
	if strings.HasPrefix(publicURL, "https://") {
		protocol = "https://"
	}

	return fmt.Sprintf("%s%s/%s/%s", protocol, base, bucket, objectPath)
}

// objectPathFromURL accepts either an object path or a public URL of the object.
func objectPathFromURL(ref, bucket string) string {
	if strings.Contains(ref, "://") {
		if u, err := url.Parse(ref); err == nil {
			ref = u.Path
		}
	}
	ref = strings.TrimPrefix(ref, "/")
	return strings.TrimPrefix(ref, bucket+"/")
}
