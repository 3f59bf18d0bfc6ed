package appid

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// mockSecretsManagerClient implements SecretsManagerClient for testing
type mockSecretsManagerClient struct {
	secretValue *string
	err         error
	calls       int
	lastID      string
}

func (m *mockSecretsManagerClient) GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	m.calls++
	m.lastID = aws.ToString(params.SecretId)
	if m.err != nil {
		return nil, m.err
	}

	return &secretsmanager.GetSecretValueOutput{
		SecretString: m.secretValue,
	}, nil
}

func TestAWSSecrets_Success(t *testing.T) {
	client := &mockSecretsManagerClient{
		secretValue: aws.String(`{"skill_id":"amzn1.ask.skill.prod"}`),
	}

	id, err := AWSSecrets(context.Background(), client, "production")()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if id != "amzn1.ask.skill.prod" {
		t.Errorf("Expected skill id 'amzn1.ask.skill.prod', got '%s'", id)
	}
	if client.lastID != "production/alexa" {
		t.Errorf("Expected secret path 'production/alexa', got '%s'", client.lastID)
	}
}

func TestAWSSecretsFromARN_Success(t *testing.T) {
	arn := "arn:aws:secretsmanager:eu-west-1:123456789012:secret:alexa"
	client := &mockSecretsManagerClient{
		secretValue: aws.String(`{"skill_id":"amzn1.ask.skill.arn"}`),
	}

	id, err := AWSSecretsFromARN(context.Background(), client, arn)()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if id != "amzn1.ask.skill.arn" || client.lastID != arn {
		t.Errorf("Unexpected id %q from %q", id, client.lastID)
	}
}

func TestAWSSecrets_Errors(t *testing.T) {
	tests := map[string]struct {
		client      *mockSecretsManagerClient
		expectedMsg string
	}{
		"get_secret_error": {
			client:      &mockSecretsManagerClient{err: errors.New("secrets manager error")},
			expectedMsg: "failed to get secret from AWS Secrets Manager at path staging/alexa",
		},
		"nil_secret_string": {
			client:      &mockSecretsManagerClient{},
			expectedMsg: "secret at path staging/alexa has no string value",
		},
		"invalid_json": {
			client:      &mockSecretsManagerClient{secretValue: aws.String(`{"skill_id":}`)},
			expectedMsg: "failed to unmarshal secret JSON at path staging/alexa",
		},
		"empty_id": {
			client:      &mockSecretsManagerClient{secretValue: aws.String(`{}`)},
			expectedMsg: "secret at path staging/alexa has an empty skill_id",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := AWSSecrets(context.Background(), tc.client, "staging")()
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.expectedMsg) {
				t.Errorf("Expected error to contain '%s', got '%s'", tc.expectedMsg, err.Error())
			}
		})
	}
}

func TestEnv(t *testing.T) {
	t.Setenv("ALEXA_SKILL_ID", "amzn1.ask.skill.env")
	id, err := Env()()
	if err != nil || id != "amzn1.ask.skill.env" {
		t.Errorf("Unexpected id %q, err %v", id, err)
	}
}

func TestVerifier(t *testing.T) {
	tests := map[string]struct {
		fetch    FetchSkillID
		appID    string
		expected bool
		wantErr  bool
	}{
		"matching":  {fetch: Static("amzn1.ask.skill.a"), appID: "amzn1.ask.skill.a", expected: true},
		"different": {fetch: Static("amzn1.ask.skill.a"), appID: "amzn1.ask.skill.b", expected: false},
		"disabled":  {fetch: Static(""), appID: "anything", expected: true},
		"fetch_error": {
			fetch:   func() (string, error) { return "", errors.New("boom") },
			appID:   "amzn1.ask.skill.a",
			wantErr: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ok, err := NewVerifier(tc.fetch).Verify(tc.appID)
			if tc.wantErr {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if ok != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, ok)
			}
		})
	}
}

func TestVerifier_FetchesOnce(t *testing.T) {
	client := &mockSecretsManagerClient{
		secretValue: aws.String(`{"skill_id":"amzn1.ask.skill.prod"}`),
	}
	v := NewVerifier(AWSSecrets(context.Background(), client, "production"))

	for i := 0; i < 3; i++ {
		if ok, err := v.Verify("amzn1.ask.skill.prod"); err != nil || !ok {
			t.Fatalf("Unexpected result %v, %v", ok, err)
		}
	}
	if client.calls != 1 {
		t.Errorf("Expected 1 secrets call, got %d", client.calls)
	}
}
