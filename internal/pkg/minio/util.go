package minio

import (
	"bytes"
	"context"
	"fmt"
	"image/jpeg"
	"io"
	"strings"

	"mysonai/internal/api/config"

	"github.com/disintegration/imaging"
	"github.com/minio/minio-go/v7"
)

const coverMaxWidth = 1200

// UploadFile uploads an object to the main bucket and returns its key.
func UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	if Client == nil {
		return "", fmt.Errorf("minio client is not initialized")
	}

	uploadInfo, err := Client.PutObject(ctx, MainBucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return uploadInfo.Key, nil
}

// UploadCover resizes an uploaded image down to coverMaxWidth, re-encodes it
// as JPEG and stores it. Smaller images pass through untouched.
func UploadCover(ctx context.Context, objectName string, reader io.Reader) (string, error) {
	img, err := imaging.Decode(reader, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("failed to decode cover image: %w", err)
	}

	if img.Bounds().Dx() > coverMaxWidth {
		img = imaging.Resize(img, coverMaxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("failed to encode cover image: %w", err)
	}

	return UploadFile(ctx, objectName, &buf, int64(buf.Len()), "image/jpeg")
}

// DeleteFile removes an object from the main bucket.
func DeleteFile(ctx context.Context, objectName string) error {
	if Client == nil {
		return fmt.Errorf("minio client is not initialized")
	}

	err := Client.RemoveObject(ctx, MainBucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// ObjectNameFromURL reverses GetPublicURL; empty when the URL does not
// point into the main bucket.
func ObjectNameFromURL(rawURL string) string {
	marker := "/" + MainBucket + "/"
	if i := strings.Index(rawURL, marker); i >= 0 {
		return rawURL[i+len(marker):]
	}
	return ""
}

// GetPublicURL builds the browser-facing URL for an object.
func GetPublicURL(objectName string) string {
	cfg := config.Cfg.MinIO

	protocol := "https"
	if !cfg.UsePublicLink && !cfg.InternalUseSSL {
		protocol = "http"
	}

	endpoint := cfg.ExternalEndpoint
	if endpoint == "" {
		endpoint = cfg.InternalEndpoint
	}

	return fmt.Sprintf("%s://%s/%s/%s", protocol, endpoint, MainBucket, objectName)
}
