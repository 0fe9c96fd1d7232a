package aws

import (
	"context"
	"log"
	"rsud/src/lib"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

func SESSendMail(ctx context.Context, input *lib.SendMailInput) error {
	c := lib.AWSGetSESClient()
	if c == nil {
		return lib.ErrAWSUnavailable
	}
	content := &types.Content{Data: aws.String(input.Body), Charset: aws.String("UTF-8")}
	body := &types.Body{Text: content}
	if input.Html {
		body = &types.Body{Html: content}
	}
	sesInput := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses:  input.To,
			CcAddresses:  input.Cc,
			BccAddresses: input.Bcc,
		},
		Source: aws.String(input.Sender()),
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(input.Subject), Charset: aws.String("UTF-8")},
			Body:    body,
		},
	}
	if input.ReplyTo != "" {
		sesInput.ReplyToAddresses = []string{input.ReplyTo}
	}
	out, err := c.SendEmail(ctx, sesInput)
	if err != nil {
		log.Printf("Error sending email: %s\n", err.Error())
		return err
	}
	log.Printf("Sent email with id: %s\n", aws.ToString(out.MessageId))
	return nil
}
