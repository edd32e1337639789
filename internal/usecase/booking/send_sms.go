package booking

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/ebsaroptics/optical-center-api/internal/audit"
	domain "github.com/ebsaroptics/optical-center-api/internal/domain/booking"
	"github.com/ebsaroptics/optical-center-api/internal/httperr"
	"github.com/ebsaroptics/optical-center-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type SendSMSInput struct {
	BookingID     uint
	CustomMessage string
	Actor         string
}

// ======================================================
// USE CASE
// ======================================================

// SendSMS records a confirmation-message send on a booking. Delivery is
// simulated: the message is logged and the booking carries the content and
// timestamp. Sending while the booking is pending confirms it.
type SendSMS struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSendSMS(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SendSMS {
	return &SendSMS{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *SendSMS) Execute(
	ctx context.Context,
	in SendSMSInput,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, in.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		return nil, err
	}

	if b.AppointmentDate == nil || b.AppointmentTime == nil || *b.AppointmentTime == "" {
		return nil, httperr.ErrBusiness("schedule_not_set")
	}

	content := in.CustomMessage
	if content == "" {
		content = domain.GenerateSMSContent(b)
	}

	log.Printf("SMS to %s: %s", b.Phone, content)

	domain.MarkSMSSent(b, content, time.Now())

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    in.Actor,
		Action:   "booking_sms_sent",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
