// Package appid resolves the skill application id that incoming requests must carry.
package appid

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// Secret is the JSON document stored in Secrets Manager.
type Secret struct {
	// SkillID is the application id assigned by the developer console.
	SkillID string `json:"skill_id"`
}

// FetchSkillID is a function type that retrieves the skill id.
// An empty id disables the application check.
type FetchSkillID func() (string, error)

// SecretsManagerClient defines the interface for AWS Secrets Manager operations.
type SecretsManagerClient interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// Static returns a FetchSkillID that always yields id.
func Static(id string) FetchSkillID {
	return func() (string, error) {
		return id, nil
	}
}

// Env reads the id from ALEXA_SKILL_ID. Unset means no check.
func Env() FetchSkillID {
	return func() (string, error) {
		return os.Getenv("ALEXA_SKILL_ID"), nil
	}
}

// AWSSecrets returns a FetchSkillID that reads the secret stored at
// "{environment}/alexa" in AWS Secrets Manager.
func AWSSecrets(ctx context.Context, client SecretsManagerClient, env string) FetchSkillID {
	secretPath := fmt.Sprintf("%s/alexa", env)
	return fromSecret(ctx, client, secretPath, "at path")
}

// AWSSecretsFromARN returns a FetchSkillID that reads the secret with the given ARN.
func AWSSecretsFromARN(ctx context.Context, client SecretsManagerClient, secretArn string) FetchSkillID {
	return fromSecret(ctx, client, secretArn, "with ARN")
}

func fromSecret(ctx context.Context, client SecretsManagerClient, secretID, where string) FetchSkillID {
	return func() (string, error) {
		result, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
			SecretId: aws.String(secretID),
		})
		if err != nil {
			return "", fmt.Errorf("failed to get secret from AWS Secrets Manager %s %s: %w", where, secretID, err)
		}

		if result.SecretString == nil {
			return "", fmt.Errorf("secret %s %s has no string value", where, secretID)
		}

		var secret Secret
		if err := json.Unmarshal([]byte(aws.ToString(result.SecretString)), &secret); err != nil {
			return "", fmt.Errorf("failed to unmarshal secret JSON %s %s: %w", where, secretID, err)
		}

		if secret.SkillID == "" {
			return "", fmt.Errorf("secret %s %s has an empty skill_id", where, secretID)
		}

		return secret.SkillID, nil
	}
}

// Verifier checks request application ids against a lazily fetched skill id.
type Verifier struct {
	skillID func() (string, error)
}

// NewVerifier creates a Verifier. fetch runs at most once, on first use.
func NewVerifier(fetch FetchSkillID) *Verifier {
	return &Verifier{
		skillID: sync.OnceValues(func() (string, error) {
			return fetch()
		}),
	}
}

// Verify reports whether applicationID is acceptable. It returns an error when
// the skill id cannot be fetched.
func (v *Verifier) Verify(applicationID string) (bool, error) {
	id, err := v.skillID()
	if err != nil {
		return false, fmt.Errorf("failed to fetch skill id: %w", err)
	}
	if id == "" {
		return true, nil
	}
	return applicationID == id, nil
}
