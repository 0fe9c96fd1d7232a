package common

import (
	"errors"
	"log"
	"rsud/src/lib"

	"github.com/tidwall/gjson"
)

var errInvalidPayload = errors.New("received invalid json body")

func stringArray(payload string, path string) []string {
	out := make([]string, 0)
	for _, item := range gjson.Get(payload, path).Array() {
		out = append(out, item.String())
	}
	return out
}

// ParseEmailPayload reads a queued email written by mailer.NewMailerMessage.
func ParseEmailPayload(spayload string) (*lib.SendMailInput, error) {
	if !gjson.Valid(spayload) {
		return nil, errInvalidPayload
	}
	input := &lib.SendMailInput{
		From:     gjson.Get(spayload, "from").String(),
		FromName: gjson.Get(spayload, "from-name").String(),
		To:       stringArray(spayload, "to"),
		Cc:       stringArray(spayload, "cc"),
		Bcc:      stringArray(spayload, "bcc"),
		ReplyTo:  gjson.Get(spayload, "reply-to").String(),
		Subject:  gjson.Get(spayload, "subject").String(),
		Body:     gjson.Get(spayload, "body").String(),
		Html:     gjson.Get(spayload, "html").Bool(),
	}
	if len(input.To) == 0 {
		return nil, errors.New("email has no recipients")
	}
	return input, nil
}

func EmailsToSendConsumer(spayload string) {
	input, err := ParseEmailPayload(spayload)
	if err != nil {
		log.Printf("[MAILER] Dropping queued email: %s\n", err.Error())
		return
	}
	log.Printf("from [%s] with subject: %s\n", input.From, input.Subject)
	if err := lib.SendMail(input); err != nil {
		log.Printf("[MAILER] error sending email: %s\n", err.Error())
		return
	}
	log.Printf("[MAILER]: an email has been sent to %s\n", input.To)
}
