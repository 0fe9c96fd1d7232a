package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"rsud/src/config"
	"rsud/src/lib"
	awslib "rsud/src/lib/aws"
)

const (
	QUEUE_SMTP  = "smtp"
	QUEUE_SES   = "ses"
	QUEUE_SQS   = "sqs"
	QUEUE_KAFKA = "kafka"
)

var ErrMailDisabled = errors.New("mail delivery is disabled")

// NewMailerMessage hands input to the configured transport. smtp and ses
// deliver in-process, sqs and kafka enqueue for the email consumer.
func NewMailerMessage(ctx context.Context, input *lib.SendMailInput) error {
	if input.From == "" {
		input.From = config.MailFrom()
		input.FromName = config.MailFromName()
	}
	switch config.MailQueue() {
	case QUEUE_SMTP:
		return lib.SendMail(input)
	case QUEUE_SES:
		return awslib.SESSendMail(ctx, input)
	case QUEUE_SQS:
		body, err := json.Marshal(input)
		if err != nil {
			return err
		}
		if err := lib.SQSProduceMessage(config.EmailQueueName(), string(body)); err != nil {
			return fmt.Errorf("error sending message to queue: %s", err.Error())
		}
		return nil
	case QUEUE_KAFKA:
		if err := lib.KafkaProduceMessage(config.EmailQueueName(), "", input); err != nil {
			return fmt.Errorf("error sending message to queue: %s", err.Error())
		}
		return nil
	}
	log.Printf("[MAILER] skipped email to %v: %s\n", input.To, ErrMailDisabled.Error())
	return ErrMailDisabled
}
