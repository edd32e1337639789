// Package dto holds response shapes that enrich stored records with the
// display labels the console renders. Missing labels serialize as empty
// strings; the UI shows them blank.
package dto

import (
	"github.com/ebsaroptics/optical-center-api/internal/labels"
	"github.com/ebsaroptics/optical-center-api/internal/models"
)

type BookingView struct {
	models.Booking
	StatusLabel        string `json:"statusLabel"`
	InterviewTypeLabel string `json:"interviewTypeLabel"`
	SourceLabel        string `json:"sourceLabel"`
}

func NewBookingView(b models.Booking) BookingView {
	statusLabel, _ := labels.BookingStatus(b.Status)
	typeLabel, _ := labels.InterviewType(b.InterviewType)
	sourceLabel, _ := labels.BookingSource(b.Source)

	return BookingView{
		Booking:            b,
		StatusLabel:        statusLabel,
		InterviewTypeLabel: typeLabel,
		SourceLabel:        sourceLabel,
	}
}

func NewBookingViews(bookings []models.Booking) []BookingView {
	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, NewBookingView(b))
	}
	return views
}
