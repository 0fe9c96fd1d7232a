package aws

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"rsud/src/lib"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// LoadSecrets exports every key of the JSON secret named by AWS_SECRET_ID as
// an environment variable. Variables already set are left alone.
func LoadSecrets(ctx context.Context) error {
	secretId := os.Getenv("AWS_SECRET_ID")
	if secretId == "" {
		return nil
	}
	client := lib.AWSGetSecretsManagerClient()
	if client == nil {
		return lib.ErrAWSUnavailable
	}
	out, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretId),
	})
	if err != nil {
		log.Printf("[secrets] Error retrieving secret %s: %s\n", secretId, err.Error())
		return err
	}
	return ExportSecrets(aws.ToString(out.SecretString))
}

func ExportSecrets(raw string) error {
	var values map[string]string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return err
	}
	for k, v := range values {
		if _, ok := os.LookupEnv(k); ok {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			return err
		}
	}
	log.Printf("[secrets] Loaded %d values\n", len(values))
	return nil
}
