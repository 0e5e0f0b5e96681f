package aws

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/diillson/joinery-estimator-go/internal/domain/repository"
)

// ArtifactRepositoryImpl implementa o ArtifactRepository com cache de configuração por perfil.
type ArtifactRepositoryImpl struct {
	cfgCache map[string]aws.Config
	s3Cache  map[string]*s3.Client
	mu       sync.Mutex
}

// NewArtifactRepository cria uma nova implementação do ArtifactRepository.
func NewArtifactRepository() repository.ArtifactRepository {
	return &ArtifactRepositoryImpl{
		cfgCache: make(map[string]aws.Config),
		s3Cache:  make(map[string]*s3.Client),
	}
}

func (r *ArtifactRepositoryImpl) getAWSConfig(ctx context.Context, profile string) (aws.Config, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cfg, ok := r.cfgCache[profile]; ok {
		return cfg, nil
	}

	var opts []func(*config.LoadOptions) error
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config for profile %s: %w", profileName(profile), err)
	}

	r.cfgCache[profile] = cfg
	return cfg, nil
}

func (r *ArtifactRepositoryImpl) s3Client(ctx context.Context, profile string) (*s3.Client, error) {
	r.mu.Lock()
	if client, ok := r.s3Cache[profile]; ok {
		r.mu.Unlock()
		return client, nil
	}
	r.mu.Unlock()

	cfg, err := r.getAWSConfig(ctx, profile)
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(cfg)

	r.mu.Lock()
	r.s3Cache[profile] = client
	r.mu.Unlock()

	return client, nil
}

// CallerAccount retorna o id da conta por trás das credenciais do perfil.
func (r *ArtifactRepositoryImpl) CallerAccount(ctx context.Context, profile string) (string, error) {
	cfg, err := r.getAWSConfig(ctx, profile)
	if err != nil {
		return "", err
	}

	stsClient := sts.NewFromConfig(cfg)
	result, err := stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("error getting account ID for profile %s: %w", profileName(profile), err)
	}
	return aws.ToString(result.Account), nil
}

// Publish envia um arquivo exportado para o S3 e retorna sua URI s3://.
func (r *ArtifactRepositoryImpl) Publish(ctx context.Context, profile, bucket, key, path string) (string, error) {
	client, err := r.s3Client(ctx, profile)
	if err != nil {
		return "", err
	}

	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("error opening %s: %w", path, err)
	}
	defer file.Close()

	input := &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   file,
	}
	if contentType := contentTypeFor(path); contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("error uploading %s to s3://%s/%s: %w", filepath.Base(path), bucket, key, err)
	}

	return fmt.Sprintf("s3://%s/%s", bucket, key), nil
}

var exportContentTypes = map[string]string{
	".csv":  "text/csv",
	".json": "application/json",
	".pdf":  "application/pdf",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

func contentTypeFor(path string) string {
	ext := filepath.Ext(path)
	if ct, ok := exportContentTypes[ext]; ok {
		return ct
	}
	return mime.TypeByExtension(ext)
}

func profileName(profile string) string {
	if profile == "" {
		return "default"
	}
	return profile
}
