package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/BruksfildServices01/barber-platform/internal/apperr"
	"github.com/BruksfildServices01/barber-platform/internal/config"
)

const maxDimension = 1024

// S3Uploader re-encodes uploaded images to webp and stores them in S3.
type S3Uploader struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewS3Uploader(cfg *config.Config) *S3Uploader {
	awsCfg := aws.Config{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Uploader{
		client:    client,
		bucket:    cfg.S3Bucket,
		publicURL: strings.TrimSuffix(cfg.S3PublicURL, "/"),
	}
}

func (u *S3Uploader) UploadImage(ctx context.Context, data []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", apperr.Validation("invalid_image", "Imagem inválida.")
	}

	img = shrink(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 80}); err != nil {
		return "", err
	}

	key := fmt.Sprintf("services/%s.webp", uuid.NewString())

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s", u.publicURL, key), nil
}

// shrink caps the longest side at maxDimension, preserving aspect ratio.
func shrink(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxDimension && h <= maxDimension {
		return img
	}

	scale := float64(maxDimension) / float64(w)
	if h > w {
		scale = float64(maxDimension) / float64(h)
	}

	dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

var _ Uploader = (*S3Uploader)(nil)
