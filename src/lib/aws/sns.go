package aws

import (
	"context"
	"log"
	"rsud/src/lib"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// SNSSendSMS publishes a transactional SMS straight to a phone number.
func SNSSendSMS(ctx context.Context, phone string, message string) error {
	client := lib.AWSGetSNSClient()
	if client == nil {
		return lib.ErrAWSUnavailable
	}
	out, err := client.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(phone),
		Message:     aws.String(message),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"AWS.SNS.SMS.SMSType": {
				DataType:    aws.String("String"),
				StringValue: aws.String("Transactional"),
			},
		},
	})
	if err != nil {
		log.Printf("[SNS] Error publishing SMS: %s\n", err.Error())
		return err
	}
	log.Printf("[SNS] Published SMS %s\n", aws.ToString(out.MessageId))
	return nil
}
