package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/regime-co/regime-api/libs/go/logger"
	"go.uber.org/zap"
)

// secretsAPI is the part of the Secrets Manager client we use
type secretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerClient resolves secrets from AWS Secrets Manager with an
// environment variable fallback for local runs.
type SecretsManagerClient struct {
	svc secretsAPI
}

// NewSecretsManagerClient creates a Secrets Manager client from a loaded AWS config
func NewSecretsManagerClient(cfg aws.Config) *SecretsManagerClient {
	return &SecretsManagerClient{svc: secretsmanager.NewFromConfig(cfg)}
}

// GetSecretString fetches the secret whose ARN is in secretArnEnvVar. When that variable
// is unset or the fetch fails, the value of fallbackEnvVar is used instead. Secrets stored
// as single-key JSON objects are unwrapped to their value.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error) {
	log := logger.Log.With(zap.String("arn_env_var", secretArnEnvVar), zap.String("fallback_env_var", fallbackEnvVar))

	if secretArn := os.Getenv(secretArnEnvVar); secretArn != "" {
		result, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
			SecretId: aws.String(secretArn),
		})
		if err == nil && result.SecretString != nil && *result.SecretString != "" {
			log.Debug("fetched secret from Secrets Manager")
			return unwrapSecret(*result.SecretString), nil
		}
		log.Warn("failed to retrieve secret from Secrets Manager, falling back to env var", zap.Error(err))
	}

	if value := os.Getenv(fallbackEnvVar); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("secret not found using ARN env var '%s' or direct env var '%s'", secretArnEnvVar, fallbackEnvVar)
}

func unwrapSecret(raw string) string {
	var secretJSON map[string]string
	if err := json.Unmarshal([]byte(raw), &secretJSON); err == nil && len(secretJSON) == 1 {
		for _, value := range secretJSON {
			return value
		}
	}
	return raw
}
