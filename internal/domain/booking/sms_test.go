package booking

import (
	"strings"
	"testing"
	"time"

	"github.com/ebsaroptics/optical-center-api/internal/models"
)

func strptr(s string) *string { return &s }

func TestGenerateSMSContent_FullSchedule(t *testing.T) {
	date := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	b := &models.Booking{
		Username:        "Ali",
		AppointmentDate: &date,
		AppointmentTime: strptr("09:00"),
	}

	content := GenerateSMSContent(b)

	if !strings.Contains(content, "Ali") {
		t.Fatalf("expected username in content: %q", content)
	}
	if !strings.Contains(content, "09:00") {
		t.Fatalf("expected time in content: %q", content)
	}
	if !strings.Contains(content, "10 يناير 2025") {
		t.Fatalf("expected formatted date in content: %q", content)
	}
	if strings.Contains(content, Unspecified) {
		t.Fatalf("unexpected placeholder in content: %q", content)
	}
}

func TestGenerateSMSContent_MissingSchedule(t *testing.T) {
	b := &models.Booking{Username: "Sara"}

	content := GenerateSMSContent(b)

	if strings.Count(content, Unspecified) != 2 {
		t.Fatalf("expected placeholder for date and time: %q", content)
	}
}

func TestGenerateSMSContent_Deterministic(t *testing.T) {
	date := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	b := &models.Booking{
		Username:        "Omar",
		AppointmentDate: &date,
		AppointmentTime: strptr("14:30"),
	}

	first := GenerateSMSContent(b)
	second := GenerateSMSContent(b)
	if first != second {
		t.Fatalf("expected identical content, got %q and %q", first, second)
	}
}

func TestMarkSMSSent_PendingAutoConfirms(t *testing.T) {
	b := &models.Booking{Status: string(StatusPending)}
	now := time.Date(2025, 1, 5, 12, 0, 0, 0, time.UTC)

	MarkSMSSent(b, "msg", now)

	if !b.SmsSent {
		t.Fatalf("expected smsSent=true")
	}
	if b.SmsSentAt == nil || !b.SmsSentAt.Equal(now) {
		t.Fatalf("expected smsSentAt=%v, got %v", now, b.SmsSentAt)
	}
	if b.SmsContent == nil || *b.SmsContent != "msg" {
		t.Fatalf("expected smsContent recorded")
	}
	if b.Status != string(StatusConfirmed) {
		t.Fatalf("expected pending booking confirmed, got %q", b.Status)
	}
}

func TestMarkSMSSent_NonPendingStatusUntouched(t *testing.T) {
	b := &models.Booking{Status: string(StatusCompleted)}

	MarkSMSSent(b, "msg", time.Now())

	if b.Status != string(StatusCompleted) {
		t.Fatalf("expected status preserved, got %q", b.Status)
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "completed", "cancelled", "rescheduled"} {
		if !IsValidStatus(s) {
			t.Fatalf("expected %q valid", s)
		}
	}
	if IsValidStatus("archived") {
		t.Fatalf("expected archived invalid")
	}
}

func TestFormatAppointmentDate(t *testing.T) {
	got := FormatAppointmentDate(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC))
	if got != "31 ديسمبر 2024" {
		t.Fatalf("unexpected formatted date: %q", got)
	}
}
