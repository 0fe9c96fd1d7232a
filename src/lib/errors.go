package lib

import "errors"

var (
	ErrAWSUnavailable    = errors.New("aws client is not configured")
	ErrBucketNotSet      = errors.New("S3_ASSETS_BUCKET is not set")
	ErrSchedulerNotReady = errors.New("scheduler is not initialized")
)
