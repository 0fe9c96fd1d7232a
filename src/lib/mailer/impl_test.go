package mailer

import (
	"context"
	"rsud/src/lib"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMailerMessageDisabled(t *testing.T) {
	t.Setenv("MAIL_QUEUE", "")
	input := &lib.SendMailInput{To: []string{"pasien@example.com"}, Subject: "x", Body: "y"}

	err := NewMailerMessage(context.Background(), input)
	assert.ErrorIs(t, err, ErrMailDisabled)
	assert.Equal(t, "noreply@rsuddolopo.go.id", input.From)
	assert.Equal(t, "RSUD Dolopo", input.FromName)
}

func TestNewMailerMessageSMTPWithoutHost(t *testing.T) {
	t.Setenv("MAIL_QUEUE", "smtp")
	t.Setenv("SMTP_HOST", "")
	err := NewMailerMessage(context.Background(), &lib.SendMailInput{To: []string{"pasien@example.com"}})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrMailDisabled)
}
