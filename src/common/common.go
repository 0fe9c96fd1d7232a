package common

import (
	"context"
	"log"
	"rsud/src/config"
	"rsud/src/lib"
	awslib "rsud/src/lib/aws"
	"rsud/src/lib/mailer"
)

const MAILER_GROUP_ID = "rsud-mailer"

// StartConsumers subscribes the email consumer to whichever queue MAIL_QUEUE
// names. smtp and ses deliver in-process and need no consumer.
func StartConsumers(ctx context.Context) {
	qname := config.EmailQueueName()
	switch config.MailQueue() {
	case mailer.QUEUE_SQS:
		c := awslib.NewSQSConsumer(qname, EmailsToSendConsumer)
		c.Listen(ctx)
	case mailer.QUEUE_KAFKA:
		if err := lib.KafkaConsumer(ctx, MAILER_GROUP_ID, []string{qname}, EmailsToSendConsumer); err != nil {
			log.Printf("[%s]: Error starting consumer: %s\n", qname, err.Error())
		}
	}
}
