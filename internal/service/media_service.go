package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	cfg "github.com/maheshrc27/postpilot/configs"
	"github.com/maheshrc27/postpilot/pkg/errs"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// MediaService uploads post images to R2 and hands back the public URL used
// as a scheduled post's image_url.
type MediaService struct {
	config cfg.Config
}

func NewMediaService(cfg cfg.Config) *MediaService {
	return &MediaService{config: cfg}
}

var allowedImageTypes = map[string]struct{}{
	"jpg": {}, "jpeg": {}, "png": {},
}

func (m *MediaService) UploadImage(ctx context.Context, file []byte) (string, error) {
	fileType, err := filetype.Match(file)
	if err != nil || fileType == types.Unknown {
		return "", fmt.Errorf("%w: unsupported file type", errs.ErrValidation)
	}
	if _, ok := allowedImageTypes[fileType.Extension]; !ok {
		return "", fmt.Errorf("%w: file type %s is not allowed", errs.ErrValidation, fileType.Extension)
	}

	key, err := gonanoid.New()
	if err != nil {
		return "", err
	}

	if err := m.uploadToR2(ctx, key, file, fileType.MIME.Value); err != nil {
		return "", fmt.Errorf("error uploading file: %w", err)
	}

	return fmt.Sprintf("%s/%s", m.config.R2.PublicURL, key), nil
}

func (m *MediaService) r2Client(ctx context.Context) (*s3.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(m.config.R2.AccessKey, m.config.R2.SecretKey, "")),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", m.config.R2.AccountID))
	}), nil
}

func (m *MediaService) uploadToR2(ctx context.Context, key string, file []byte, contentType string) error {
	client, err := m.r2Client(ctx)
	if err != nil {
		return err
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(m.config.R2.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(file),
		ContentType: aws.String(contentType),
	}

	_, err = client.PutObject(ctx, input)
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	return nil
}
