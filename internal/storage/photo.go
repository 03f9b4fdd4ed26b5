package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/Imrannnnn/TallieRestaurantApp/internal/config"
)

const maxPhotoWidth = 1280

// PhotoStore uploads restaurant photos to S3, re-encoded as WebP. A nil
// store means no bucket is configured and photo uploads are rejected.
type PhotoStore struct {
	client *s3.Client
	bucket string
	region string
}

func NewPhotoStore(cfg *config.Config) *PhotoStore {
	if cfg.S3Bucket == "" {
		return nil
	}

	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	})

	return &PhotoStore{
		client: client,
		bucket: cfg.S3Bucket,
		region: cfg.S3Region,
	}
}

func (s *PhotoStore) UploadRestaurantPhoto(
	ctx context.Context,
	restaurantID uint,
	src io.Reader,
) (string, error) {

	img, _, err := image.Decode(src)
	if err != nil {
		return "", fmt.Errorf("decode photo: %w", err)
	}

	img = downscale(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 80}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	key := fmt.Sprintf("restaurants/%d/photo.webp", restaurantID)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        &buf,
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("upload photo: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}

func downscale(img image.Image) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() <= maxPhotoWidth {
		return img
	}

	height := bounds.Dy() * maxPhotoWidth / bounds.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxPhotoWidth, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
