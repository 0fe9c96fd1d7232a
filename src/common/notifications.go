package common

import (
	"context"
	"errors"
	"fmt"
	"log"
	"rsud/src/config"
	"rsud/src/lib"
	awslib "rsud/src/lib/aws"
	"rsud/src/lib/mailer"
	"rsud/src/models"
	"rsud/src/types"
	"strings"
	"time"
)

const notificationTimeout = 30 * time.Second

type RegistrationEventPayload struct {
	Event        string               `json:"event"`
	BookingCode  string               `json:"booking_code"`
	Registration *models.Registration `json:"registration"`
	OccurredAt   time.Time            `json:"occurred_at"`
}

// RegistrationSummary is the realtime payload for admin dashboards. Patient
// details stay behind the authenticated REST routes.
type RegistrationSummary struct {
	ID            uint                     `json:"id"`
	BookingCode   string                   `json:"bookingCode"`
	Poli          string                   `json:"poli"`
	Date          string                   `json:"date"`
	Status        types.RegistrationStatus `json:"status"`
	PaymentStatus types.PaymentStatus      `json:"payment_status"`
}

type MessageSummary struct {
	ID      uint   `json:"id"`
	Subject string `json:"subject"`
}

func SummarizeRegistration(reg *models.Registration) RegistrationSummary {
	return RegistrationSummary{
		ID:            reg.ID,
		BookingCode:   models.BookingCode(reg.ID),
		Poli:          reg.Poli,
		Date:          reg.Date,
		Status:        reg.Status,
		PaymentStatus: reg.PaymentStatus,
	}
}

// publishRegistrationEvent writes to the registrations topic when a broker is
// configured.
func publishRegistrationEvent(event string, reg *models.Registration) {
	if config.KafkaBroker() == "" {
		return
	}
	payload := &RegistrationEventPayload{
		Event:        event,
		BookingCode:  reg.BookingCode,
		Registration: reg,
		OccurredAt:   time.Now(),
	}
	if err := lib.KafkaProduceMessage(config.RegistrationTopic(), reg.BookingCode, payload); err != nil {
		log.Printf("[kafka] Error publishing %s for %s: %s\n", event, reg.BookingCode, err.Error())
	}
}

func RegistrationEmail(reg *models.Registration) *lib.SendMailInput {
	var b strings.Builder
	fmt.Fprintf(&b, "Yth. %s,\n\n", reg.Name)
	b.WriteString("Pendaftaran Anda di RSUD Dolopo telah kami terima.\n\n")
	fmt.Fprintf(&b, "Kode Booking : %s\n", reg.BookingCode)
	fmt.Fprintf(&b, "Poli         : %s\n", reg.Poli)
	fmt.Fprintf(&b, "Tanggal      : %s\n", reg.Date)
	fmt.Fprintf(&b, "Pembayaran   : %s (%s)\n", reg.PaymentDetail, reg.PaymentStatus)
	b.WriteString("\nTunjukkan kode booking ini di loket pendaftaran.\n")
	return &lib.SendMailInput{
		To:      []string{reg.Email},
		Subject: fmt.Sprintf("Pendaftaran %s - RSUD Dolopo", reg.BookingCode),
		Body:    b.String(),
	}
}

// OnRegistrationCreated runs the side effects of a new registration. None of
// them can fail the request.
func OnRegistrationCreated(reg models.Registration) {
	ctx, cancel := context.WithTimeout(context.Background(), notificationTimeout)
	defer cancel()

	lib.CacheDel(ctx, lib.CACHE_KEY_STATS)
	lib.Broadcast(string(types.EVENT_REGISTRATION_CREATED), SummarizeRegistration(&reg))
	publishRegistrationEvent("registration.created", &reg)

	if reg.Email == "" {
		return
	}
	if err := mailer.NewMailerMessage(ctx, RegistrationEmail(&reg)); err != nil && !errors.Is(err, mailer.ErrMailDisabled) {
		log.Printf("[MAILER] Error sending confirmation for %s: %s\n", reg.BookingCode, err.Error())
	}
}

func OnRegistrationUpdated(before models.Registration, after models.Registration) {
	ctx, cancel := context.WithTimeout(context.Background(), notificationTimeout)
	defer cancel()

	lib.CacheDel(ctx, lib.CACHE_KEY_STATS)
	lib.Broadcast(string(types.EVENT_REGISTRATION_UPDATED), SummarizeRegistration(&after))
	publishRegistrationEvent("registration.updated", &after)

	if !ConfirmedTransition(&before, &after) || !config.SMSEnabled() {
		return
	}
	msg := fmt.Sprintf("RSUD Dolopo: pendaftaran %s untuk poli %s tanggal %s telah dikonfirmasi.", after.BookingCode, after.Poli, after.Date)
	if err := awslib.SNSSendSMS(ctx, NormalizePhone(after.Phone), msg); err != nil {
		log.Printf("[SNS] Error notifying %s: %s\n", after.BookingCode, err.Error())
	}
}

// InvalidateStats drops the cached dashboard counters.
func InvalidateStats() {
	lib.CacheDel(context.Background(), lib.CACHE_KEY_STATS)
}

func OnMessageCreated(msg models.Message) {
	lib.CacheDel(context.Background(), lib.CACHE_KEY_STATS)
	lib.Broadcast(string(types.EVENT_MESSAGE_CREATED), MessageSummary{ID: msg.ID, Subject: msg.Subject})
}

func ConfirmedTransition(before *models.Registration, after *models.Registration) bool {
	return before.Status != types.REGISTRATION_CONFIRMED && after.Status == types.REGISTRATION_CONFIRMED
}

// NormalizePhone turns a local 08xx number into E.164 (+628xx).
func NormalizePhone(phone string) string {
	p := strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(phone))
	switch {
	case strings.HasPrefix(p, "+"):
		return p
	case strings.HasPrefix(p, "62"):
		return "+" + p
	case strings.HasPrefix(p, "0"):
		return "+62" + p[1:]
	}
	return p
}
