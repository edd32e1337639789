package booking

import (
	"context"
	"strings"

	"github.com/ebsaroptics/optical-center-api/internal/audit"
	domain "github.com/ebsaroptics/optical-center-api/internal/domain/booking"
	"github.com/ebsaroptics/optical-center-api/internal/httperr"
	"github.com/ebsaroptics/optical-center-api/internal/models"
	"github.com/ebsaroptics/optical-center-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreatePublicBookingInput struct {
	Username      string
	Phone         string
	InterviewType string
}

// ======================================================
// USE CASE
// ======================================================

// CreatePublicBooking handles the website booking form. Employee-entered
// bookings go through the console handler instead and skip the phone format
// check.
type CreatePublicBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreatePublicBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreatePublicBooking {
	return &CreatePublicBooking{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreatePublicBooking) Execute(
	ctx context.Context,
	in CreatePublicBookingInput,
) (*models.Booking, error) {

	username := strings.TrimSpace(in.Username)
	phone := strings.TrimSpace(in.Phone)

	if username == "" || phone == "" || in.InterviewType == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	if !validators.IsPhoneValid(phone) {
		return nil, httperr.ErrBusiness("invalid_phone")
	}

	if !domain.IsValidInterviewType(in.InterviewType) {
		return nil, httperr.ErrBusiness("invalid_interview_type")
	}

	b := &models.Booking{
		Username:      username,
		Phone:         phone,
		InterviewType: in.InterviewType,
		Status:        string(domain.InitialStatus()),
		IsVisible:     true,
		Source:        string(domain.SourceWebsite),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    "website",
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
