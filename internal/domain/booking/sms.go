package booking

import (
	"fmt"
	"time"

	"github.com/ebsaroptics/optical-center-api/internal/models"
)

// Unspecified is rendered in the SMS text when the appointment date or time
// has not been set yet. Previews before scheduling show it on purpose.
const Unspecified = "غير محدد"

var arabicMonths = [...]string{
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

// FormatAppointmentDate renders a calendar date the way the SMS template
// expects it, e.g. "10 يناير 2025".
func FormatAppointmentDate(d time.Time) string {
	return fmt.Sprintf("%d %s %d", d.Day(), arabicMonths[d.Month()-1], d.Year())
}

// GenerateSMSContent produces the confirmation message for a booking. Pure:
// same booking state always yields the same text.
func GenerateSMSContent(b *models.Booking) string {
	date := Unspecified
	if b.AppointmentDate != nil {
		date = FormatAppointmentDate(*b.AppointmentDate)
	}

	hour := Unspecified
	if b.AppointmentTime != nil && *b.AppointmentTime != "" {
		hour = *b.AppointmentTime
	}

	return fmt.Sprintf(
		"مرحباً %s، تم تأكيد موعدك في مركز ابصار للبصريات في %s الساعة %s. يرجى الحضور في الوقت المحدد. شكراً لك.",
		b.Username, date, hour,
	)
}

// MarkSMSSent records a send event on the booking. When the status is still
// pending, sending the confirmation also confirms the booking — that
// coupling is a business rule, not incidental.
func MarkSMSSent(b *models.Booking, content string, now time.Time) {
	b.SmsSent = true
	b.SmsSentAt = &now
	b.SmsContent = &content

	if Status(b.Status) == StatusPending {
		b.Status = string(StatusConfirmed)
	}
}
