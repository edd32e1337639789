package booking

// ===============================
// Booking enums
// ===============================

type Status string

const (
	StatusPending     Status = "pending"
	StatusConfirmed   Status = "confirmed"
	StatusCompleted   Status = "completed"
	StatusCancelled   Status = "cancelled"
	StatusRescheduled Status = "rescheduled"
)

// InitialStatus is the status of every website-sourced booking.
func InitialStatus() Status {
	return StatusPending
}

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCompleted,
		StatusCancelled, StatusRescheduled:
		return true
	}
	return false
}

type Source string

const (
	SourceWebsite  Source = "website"
	SourcePhone    Source = "phone"
	SourceWalkIn   Source = "walk-in"
	SourceEmployee Source = "employee"
)

func IsValidSource(s string) bool {
	switch Source(s) {
	case SourceWebsite, SourcePhone, SourceWalkIn, SourceEmployee:
		return true
	}
	return false
}

const (
	TypeEyeExamination         = "eye-examination"
	TypeContactLensFitting     = "contact-lens-fitting"
	TypeSunglassesConsultation = "sunglasses-consultation"
	TypeOther                  = "other"
)

func IsValidInterviewType(t string) bool {
	switch t {
	case TypeEyeExamination, TypeContactLensFitting,
		TypeSunglassesConsultation, TypeOther:
		return true
	}
	return false
}
