package storage

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path"
	"strings"

	"galeana-pepper/internal/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	AllowImage = []string{"image/jpeg", "image/png", "image/webp"}

	ErrFileTypeNotAllowed = errors.New("file type not allowed")
	ErrStorageDisabled    = errors.New("object storage is not configured")
)

type (
	AwsS3 interface {
		UploadFile(ctx context.Context, fileName string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error)
		DeleteFile(ctx context.Context, objectKey string) error
		GetPublicLinkKey(objectKey string) string
		GetObjectKeyFromLink(link string) string
	}

	awsS3 struct {
		client *s3.Client
		bucket string
		region string
	}
)

// NewAwsS3 builds the client from config. Without a bucket it returns a store
// that refuses uploads.
func NewAwsS3(ctx context.Context) (AwsS3, error) {
	bucket := utils.GetConfig("AWS_S3_BUCKET")
	region := utils.GetConfig("AWS_S3_REGION")
	if bucket == "" {
		return disabledS3{}, nil
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if key := utils.GetConfig("AWS_ACCESS_KEY"); key != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(key, utils.GetConfig("AWS_SECRET_KEY"), ""),
		))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return &awsS3{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}, nil
}

func (a *awsS3) UploadFile(ctx context.Context, fileName string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	head := make([]byte, 512)
	n, _ := src.Read(head)
	contentType := http.DetectContentType(head[:n])
	if len(allowedTypes) > 0 && !contains(allowedTypes, contentType) {
		return "", ErrFileTypeNotAllowed
	}
	if _, err := src.Seek(0, 0); err != nil {
		return "", err
	}

	objectKey := path.Join(folder, fileName+extension(contentType))
	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(objectKey),
		Body:          src,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(file.Size),
	})
	if err != nil {
		return "", err
	}
	return objectKey, nil
}

func (a *awsS3) DeleteFile(ctx context.Context, objectKey string) error {
	_, err := a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(objectKey),
	})
	return err
}

func (a *awsS3) GetPublicLinkKey(objectKey string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, objectKey)
}

func (a *awsS3) GetObjectKeyFromLink(link string) string {
	prefix := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", a.bucket, a.region)
	if !strings.HasPrefix(link, prefix) {
		return ""
	}
	return strings.TrimPrefix(link, prefix)
}

type disabledS3 struct{}

func (disabledS3) UploadFile(context.Context, string, *multipart.FileHeader, string, ...string) (string, error) {
	return "", ErrStorageDisabled
}

func (disabledS3) DeleteFile(context.Context, string) error { return ErrStorageDisabled }

func (disabledS3) GetPublicLinkKey(string) string { return "" }

func (disabledS3) GetObjectKeyFromLink(string) string { return "" }

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func extension(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
