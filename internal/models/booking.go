package models

import "time"

// Booking is an appointment request for the optical center. Website
// visitors create them through the public form; employees manage them from
// the console. Records are never hard-deleted from the console — IsVisible
// is the soft-delete flag.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username string `gorm:"size:100;not null" json:"username"`
	Phone    string `gorm:"size:30;not null" json:"phone"`
	Email    string `gorm:"size:100" json:"email"`

	InterviewType string `gorm:"size:40;not null" json:"interviewType"`

	Status    string `gorm:"size:20;default:'pending'" json:"status"`
	IsVisible bool   `gorm:"default:true" json:"isVisible"`

	AppointmentDate     *time.Time `json:"appointmentDate"`
	AppointmentTime     *string    `gorm:"size:5" json:"appointmentTime"` // "HH:MM"
	AppointmentDuration int        `gorm:"default:30" json:"appointmentDuration"`
	AssignedEmployee    *string    `gorm:"size:100" json:"assignedEmployee"`

	SmsSent    bool       `gorm:"default:false" json:"smsSent"`
	SmsSentAt  *time.Time `json:"smsSentAt"`
	SmsContent *string    `gorm:"type:text" json:"smsContent"`

	Notes  string `gorm:"type:text" json:"notes"`
	Source string `gorm:"size:20;default:'website'" json:"source"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
