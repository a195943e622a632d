// Package upload converte imagens enviadas pelo painel em webp 500x500
// e as publica num bucket S3, devolvendo a URL pública gravada no perfil
// da massagista.
package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/ClinicaExecutivas/studio-scheduler/internal/config"
)

const (
	targetSize  = 500
	webpQuality = 85

	// MaxUploadBytes limita o corpo aceito pelo endpoint de upload.
	MaxUploadBytes = 10 << 20
)

var ErrNotConfigured = errors.New("image storage not configured")

type Uploader struct {
	client    *s3.Client
	bucket    string
	region    string
	publicURL string
}

// NewUploader devolve nil quando o bucket não está configurado; o
// endpoint de upload responde 503 nesse caso.
func NewUploader(cfg *config.Config) *Uploader {
	if cfg.S3Bucket == "" || cfg.S3AccessKey == "" {
		return nil
	}

	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &Uploader{
		client:    s3.New(opts),
		bucket:    cfg.S3Bucket,
		region:    cfg.S3Region,
		publicURL: strings.TrimSuffix(cfg.S3PublicURL, "/"),
	}
}

// Upload decodifica a imagem, recorta para um quadrado 500x500 e envia
// como webp. Devolve a URL pública do objeto.
func (u *Uploader) Upload(ctx context.Context, r io.Reader) (string, error) {
	if u == nil {
		return "", ErrNotConfigured
	}

	src, _, err := image.Decode(io.LimitReader(r, MaxUploadBytes))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	square := cropAndScale(src, targetSize)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, square, &webp.Options{Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	key := fmt.Sprintf("massagistas/%s.webp", uuid.New().String())

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return u.objectURL(key), nil
}

func (u *Uploader) objectURL(key string) string {
	if u.publicURL != "" {
		return u.publicURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
}

// cropAndScale recorta o maior quadrado central da origem e o reduz (ou
// amplia) para size x size.
func cropAndScale(src image.Image, size int) image.Image {
	bounds := src.Bounds()
	side := bounds.Dx()
	if bounds.Dy() < side {
		side = bounds.Dy()
	}

	x0 := bounds.Min.X + (bounds.Dx()-side)/2
	y0 := bounds.Min.Y + (bounds.Dy()-side)/2
	crop := image.Rect(x0, y0, x0+side, y0+side)

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, crop, draw.Over, nil)
	return dst
}
