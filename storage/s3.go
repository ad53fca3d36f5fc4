package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// s3Storage bekerja dengan AWS S3 maupun object storage S3-compatible
// (MinIO, R2, Spaces) lewat endpoint custom.
type s3Storage struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
	acl           s3types.ObjectCannedACL
}

func newS3Storage() (*s3Storage, error) {
	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		return nil, fmt.Errorf("storage/s3: S3_BUCKET is required")
	}

	publicBaseURL := strings.TrimRight(os.Getenv("S3_PUBLIC_BASE_URL"), "/")
	if publicBaseURL == "" {
		return nil, fmt.Errorf("storage/s3: S3_PUBLIC_BASE_URL is required")
	}

	region := os.Getenv("S3_REGION")
	if region == "" {
		region = "us-east-1"
	}

	opts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(region),
	}

	// Static credentials diperlukan untuk MinIO / R2 / Spaces
	key := os.Getenv("S3_ACCESS_KEY_ID")
	secret := os.Getenv("S3_SECRET_ACCESS_KEY")
	if key != "" && secret != "" {
		opts = append(opts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(key, secret, ""),
		))
	}

	cfg, err := awscfg.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("storage/s3: load config: %w", err)
	}

	endpoint := os.Getenv("S3_ENDPOINT")
	forcePathStyle := os.Getenv("S3_FORCE_PATH_STYLE") == "true"

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.UsePathStyle = forcePathStyle
	})

	return &s3Storage{
		client:        client,
		bucket:        bucket,
		publicBaseURL: publicBaseURL,
		acl:           allowedACL(os.Getenv("S3_ACL")),
	}, nil
}

func allowedACL(acl string) s3types.ObjectCannedACL {
	switch s3types.ObjectCannedACL(strings.TrimSpace(acl)) {
	case s3types.ObjectCannedACLPrivate,
		s3types.ObjectCannedACLPublicRead,
		s3types.ObjectCannedACLPublicReadWrite,
		s3types.ObjectCannedACLAuthenticatedRead,
		s3types.ObjectCannedACLAwsExecRead,
		s3types.ObjectCannedACLBucketOwnerRead,
		s3types.ObjectCannedACLBucketOwnerFullControl:
		return s3types.ObjectCannedACL(strings.TrimSpace(acl))
	}
	return ""
}

func (s *s3Storage) Upload(file *multipart.FileHeader, name string) (*StoredFile, error) {
	key := createObjectKey(name, file)

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   src,
	}

	if contentType := file.Header.Get("Content-Type"); contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if s.acl != "" {
		input.ACL = s.acl
	}

	if _, err := s.client.PutObject(context.Background(), input); err != nil {
		return nil, err
	}

	return &StoredFile{
		Key:       key,
		PublicURL: s.publicBaseURL + "/" + key,
	}, nil
}

func (s *s3Storage) Delete(keyOrURL string) error {
	if keyOrURL == "" {
		return nil
	}

	key := keyFromURL(keyOrURL)
	if !strings.HasPrefix(key, "menu/") {
		return nil
	}

	_, err := s.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}
