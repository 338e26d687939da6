package service

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ObjectPutter is the part of the S3 client the archive uses.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3UploadArchive keeps classified uploads in S3 under
// uploads/<label>/<yyyy>/<mm>/<dd>/<uuid><ext>.
type S3UploadArchive struct {
	client ObjectPutter
	bucket string
	now    func() time.Time
}

func NewS3UploadArchive(client ObjectPutter, bucket string) *S3UploadArchive {
	return &S3UploadArchive{client: client, bucket: bucket, now: time.Now}
}

var unsafeKeyChars = regexp.MustCompile(`[^a-z0-9_-]+`)

func (a *S3UploadArchive) Store(ctx context.Context, image []byte, label string) (string, error) {
	contentType := http.DetectContentType(image)

	slug := strings.Trim(unsafeKeyChars.ReplaceAllString(strings.ToLower(label), "_"), "_")
	if slug == "" {
		slug = "unknown"
	}
	key := fmt.Sprintf("uploads/%s/%s/%s%s", slug, a.now().UTC().Format("2006/01/02"), uuid.New(), extension(contentType))

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(image),
		ContentType: aws.String(contentType),
		Metadata:    map[string]string{"label": label},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}
	return key, nil
}

func extension(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
