package booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ebsaroptics/optical-center-api/internal/audit"
	dbpkg "github.com/ebsaroptics/optical-center-api/internal/db"
	domain "github.com/ebsaroptics/optical-center-api/internal/domain/booking"
	"github.com/ebsaroptics/optical-center-api/internal/httperr"
	infraRepo "github.com/ebsaroptics/optical-center-api/internal/infra/repository"
	"github.com/ebsaroptics/optical-center-api/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newDeps(t *testing.T) (*gorm.DB, domain.Repository, *audit.Dispatcher) {
	t.Helper()

	db := newTestDB(t)
	repo := infraRepo.NewBookingGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db))
	return db, repo, dispatcher
}

func TestCreatePublicBooking_Defaults(t *testing.T) {
	_, repo, dispatcher := newDeps(t)
	uc := NewCreatePublicBooking(repo, dispatcher)

	b, err := uc.Execute(context.Background(), CreatePublicBookingInput{
		Username:      "Ali",
		Phone:         "0915477450",
		InterviewType: "eye-examination",
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if b.Status != "pending" {
		t.Fatalf("expected pending, got %q", b.Status)
	}
	if !b.IsVisible {
		t.Fatalf("expected visible booking")
	}
	if b.Source != "website" {
		t.Fatalf("expected website source, got %q", b.Source)
	}
	if b.SmsSent {
		t.Fatalf("expected smsSent=false")
	}
	if b.ID == 0 {
		t.Fatalf("expected persisted booking id")
	}
}

func TestCreatePublicBooking_MissingFields(t *testing.T) {
	_, repo, dispatcher := newDeps(t)
	uc := NewCreatePublicBooking(repo, dispatcher)

	_, err := uc.Execute(context.Background(), CreatePublicBookingInput{
		Username: "Ali",
		Phone:    "0915477450",
	})
	if !httperr.IsBusiness(err, "missing_fields") {
		t.Fatalf("expected missing_fields, got %v", err)
	}
}

func TestCreatePublicBooking_BadPhone(t *testing.T) {
	_, repo, dispatcher := newDeps(t)
	uc := NewCreatePublicBooking(repo, dispatcher)

	_, err := uc.Execute(context.Background(), CreatePublicBookingInput{
		Username:      "Ali",
		Phone:         "not-a-phone!",
		InterviewType: "other",
	})
	if !httperr.IsBusiness(err, "invalid_phone") {
		t.Fatalf("expected invalid_phone, got %v", err)
	}
}

func seedBooking(t *testing.T, db *gorm.DB, b *models.Booking) *models.Booking {
	t.Helper()

	if err := db.Create(b).Error; err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	return b
}

func TestSendSMS_PendingConfirms(t *testing.T) {
	db, repo, dispatcher := newDeps(t)
	uc := NewSendSMS(repo, dispatcher)

	date := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	hour := "09:00"
	b := seedBooking(t, db, &models.Booking{
		Username:        "Ali",
		Phone:           "0915477450",
		InterviewType:   "eye-examination",
		Status:          "pending",
		IsVisible:       true,
		AppointmentDate: &date,
		AppointmentTime: &hour,
	})

	got, err := uc.Execute(context.Background(), SendSMSInput{BookingID: b.ID, Actor: "1fatam"})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if got.Status != "confirmed" {
		t.Fatalf("expected confirmed after send, got %q", got.Status)
	}
	if !got.SmsSent || got.SmsSentAt == nil {
		t.Fatalf("expected send recorded")
	}
	if got.SmsContent == nil || !strings.Contains(*got.SmsContent, "Ali") {
		t.Fatalf("expected generated content with username, got %v", got.SmsContent)
	}
	if !strings.Contains(*got.SmsContent, "09:00") {
		t.Fatalf("expected time in content, got %q", *got.SmsContent)
	}

	var persisted models.Booking
	if err := db.First(&persisted, b.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if persisted.Status != "confirmed" || !persisted.SmsSent {
		t.Fatalf("expected send persisted, got status=%q smsSent=%v", persisted.Status, persisted.SmsSent)
	}
}

func TestSendSMS_CustomMessage(t *testing.T) {
	db, repo, dispatcher := newDeps(t)
	uc := NewSendSMS(repo, dispatcher)

	date := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	hour := "11:30"
	b := seedBooking(t, db, &models.Booking{
		Username:        "Sara",
		Phone:           "0925000000",
		InterviewType:   "other",
		Status:          "confirmed",
		IsVisible:       true,
		AppointmentDate: &date,
		AppointmentTime: &hour,
	})

	got, err := uc.Execute(context.Background(), SendSMSInput{
		BookingID:     b.ID,
		CustomMessage: "نص مخصص",
		Actor:         "1fatam",
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got.SmsContent == nil || *got.SmsContent != "نص مخصص" {
		t.Fatalf("expected custom content, got %v", got.SmsContent)
	}
	if got.Status != "confirmed" {
		t.Fatalf("expected status unchanged, got %q", got.Status)
	}
}

func TestSendSMS_ScheduleNotSet(t *testing.T) {
	db, repo, dispatcher := newDeps(t)
	uc := NewSendSMS(repo, dispatcher)

	b := seedBooking(t, db, &models.Booking{
		Username:      "Omar",
		Phone:         "0910000000",
		InterviewType: "other",
		Status:        "pending",
		IsVisible:     true,
	})

	_, err := uc.Execute(context.Background(), SendSMSInput{BookingID: b.ID})
	if !httperr.IsBusiness(err, "schedule_not_set") {
		t.Fatalf("expected schedule_not_set, got %v", err)
	}

	var persisted models.Booking
	if err := db.First(&persisted, b.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if persisted.SmsSent || persisted.Status != "pending" || persisted.SmsSentAt != nil {
		t.Fatalf("expected booking unchanged after failed send")
	}
}

func TestSendSMS_NotFound(t *testing.T) {
	_, repo, dispatcher := newDeps(t)
	uc := NewSendSMS(repo, dispatcher)

	_, err := uc.Execute(context.Background(), SendSMSInput{BookingID: 9999})
	if !httperr.IsBusiness(err, "booking_not_found") {
		t.Fatalf("expected booking_not_found, got %v", err)
	}
}

// brokenRepo fails every call with the same error.
type brokenRepo struct {
	err error
}

func (r brokenRepo) GetBooking(context.Context, uint) (*models.Booking, error) {
	return nil, r.err
}

func (r brokenRepo) CreateBooking(context.Context, *models.Booking) error {
	return r.err
}

func (r brokenRepo) UpdateBooking(context.Context, *models.Booking) error {
	return r.err
}

func TestSendSMS_StoreFailureIsNotNotFound(t *testing.T) {
	db := newTestDB(t)
	dispatcher := audit.NewDispatcher(audit.New(db))

	storeErr := errors.New("connection reset by peer")
	uc := NewSendSMS(brokenRepo{err: storeErr}, dispatcher)

	_, err := uc.Execute(context.Background(), SendSMSInput{BookingID: 1})
	if httperr.IsBusiness(err, "booking_not_found") {
		t.Fatalf("store failure must not read as booking_not_found")
	}
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected the store error to surface, got %v", err)
	}
}
