package aws

import (
	"bytes"
	"context"
	"io"
	"log"
	"rsud/src/config"
	"rsud/src/lib"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3UploadAsset stores body under name in the assets bucket and returns the
// object key.
func S3UploadAsset(ctx context.Context, name string, body []byte, contentType string) (string, error) {
	assetsBucket := config.AssetsBucket()
	if assetsBucket == "" {
		return "", lib.ErrBucketNotSet
	}
	client := lib.AWSGetS3Client()
	if client == nil {
		return "", lib.ErrAWSUnavailable
	}
	_, err := client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(assetsBucket),
		Key:         aws.String(name),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Printf("Could not put object to S3 bucket: %s\n", err.Error())
		return "", err
	}
	err = s3.NewObjectExistsWaiter(client).Wait(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(assetsBucket),
		Key:    aws.String(name),
	}, time.Minute)
	if err != nil {
		log.Printf("Failed attempt to wait for object %s to exist: %s\n", name, err.Error())
		return "", err
	}
	log.Printf("Added object '%s' to bucket '%s'", name, assetsBucket)
	return name, nil
}

func S3PresignAsset(ctx context.Context, name string, expires time.Duration) (string, error) {
	assetsBucket := config.AssetsBucket()
	if assetsBucket == "" {
		return "", lib.ErrBucketNotSet
	}
	client := lib.AWSGetS3Client()
	if client == nil {
		return "", lib.ErrAWSUnavailable
	}
	pre := s3.NewPresignClient(client)
	r, err := pre.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(assetsBucket),
		Key:    aws.String(name),
	}, func(po *s3.PresignOptions) {
		po.Expires = expires
	})
	if err != nil {
		log.Printf("Could not generate presigned URL for object [%s]: %s\n", name, err.Error())
		return "", err
	}
	return r.URL, nil
}

func S3DownloadAsset(ctx context.Context, name string) ([]byte, error) {
	if config.AssetsBucket() == "" {
		return nil, lib.ErrBucketNotSet
	}
	client := lib.AWSGetS3Client()
	if client == nil {
		return nil, lib.ErrAWSUnavailable
	}
	result, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(config.AssetsBucket()),
		Key:    aws.String(name),
	})
	if err != nil {
		return nil, err
	}
	defer result.Body.Close()
	return io.ReadAll(result.Body)
}
