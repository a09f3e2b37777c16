package cloudflare

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/gosimple/slug"

	appconfig "imobhub_backend/pkg/config"
)

var (
	ErrNotConfigured = errors.New("R2 storage is not configured")
	ErrForeignURL    = errors.New("url does not belong to this bucket")
)

// objectAPI is the part of the S3 client the uploader uses.
type objectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Uploader stores site images in a Cloudflare R2 bucket through its S3 API.
type Uploader struct {
	client    objectAPI
	bucket    string
	publicURL string
}

func getS3Client(ctx context.Context, cfg appconfig.R2Config) (*s3.Client, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID))
		o.UsePathStyle = true
		o.Region = "auto"
	})

	return client, nil
}

func NewUploader(ctx context.Context, cfg appconfig.R2Config) (*Uploader, error) {
	if !cfg.Enabled() {
		return nil, ErrNotConfigured
	}

	client, err := getS3Client(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &Uploader{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
	}, nil
}

type UploadImageConfig struct {
	Body        io.Reader
	ContentType string
	Extension   string
	// Folder groups objects, e.g. "properties" or "news".
	Folder string
	// Name is the owning record's title; it becomes a URL-safe path segment.
	Name string
}

type UploadResult struct {
	URL          string `json:"url"`
	CloudflareID string `json:"cloudflareId"`
}

func (u *Uploader) UploadImage(ctx context.Context, cfg UploadImageConfig) (UploadResult, error) {
	// Klasör isimlerini URL-safe hale getir
	safeFolder := slug.Make(cfg.Folder)
	if safeFolder == "" {
		safeFolder = "misc"
	}
	safeName := slug.Make(cfg.Name)
	if safeName == "" {
		safeName = "untitled"
	}

	// Unique dosya adı oluştur
	uniqueID := fmt.Sprintf("%d-%s", time.Now().UnixNano(), uuid.New().String())
	objectKey := path.Join("images", safeFolder, safeName, uniqueID+cfg.Extension)

	input := &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(objectKey),
		Body:        cfg.Body,
		ContentType: aws.String(cfg.ContentType),
	}

	if _, err := u.client.PutObject(ctx, input); err != nil {
		return UploadResult{}, fmt.Errorf("could not upload file to R2: %w", err)
	}

	return UploadResult{
		URL:          u.publicURL + "/" + objectKey,
		CloudflareID: uniqueID,
	}, nil
}

func (u *Uploader) DeleteImage(ctx context.Context, fullURL string) error {
	objectKey := u.objectKeyFromURL(fullURL)
	if objectKey == "" {
		return fmt.Errorf("%w: %s", ErrForeignURL, fullURL)
	}

	input := &s3.DeleteObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(objectKey),
	}

	if _, err := u.client.DeleteObject(ctx, input); err != nil {
		return fmt.Errorf("could not delete file from R2: %w", err)
	}

	log.Printf("Deleted image %s from R2", GetFileNameFromURL(fullURL))
	return nil
}

// GetFileNameFromURL sadece dosya adını döndürür
func GetFileNameFromURL(url string) string {
	parts := strings.Split(url, "/")
	return parts[len(parts)-1]
}

// objectKeyFromURL public URL'den object key'i çıkarır
func (u *Uploader) objectKeyFromURL(url string) string {
	prefix := u.publicURL + "/"
	if !strings.HasPrefix(url, prefix) {
		return ""
	}
	return strings.TrimPrefix(url, prefix)
}
