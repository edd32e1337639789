package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/ebsaroptics/optical-center-api/internal/domain/booking"
	"github.com/ebsaroptics/optical-center-api/internal/httperr"
	"github.com/ebsaroptics/optical-center-api/internal/middleware"
	"github.com/ebsaroptics/optical-center-api/internal/models"
	ucBooking "github.com/ebsaroptics/optical-center-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type SMSHandler struct {
	db     *gorm.DB
	sendUC *ucBooking.SendSMS
}

func NewSMSHandler(db *gorm.DB, sendUC *ucBooking.SendSMS) *SMSHandler {
	return &SMSHandler{
		db:     db,
		sendUC: sendUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SendSMSRequest struct {
	CustomMessage string `json:"customMessage"`
}

// ======================================================
// PREVIEW
// ======================================================

// Preview renders the message text without mutating anything. Works before
// the schedule is set; placeholders show up in the text instead.
func (h *SMSHandler) Preview(c *gin.Context) {
	id := c.Param("id")

	var b models.Booking
	if err := h.db.First(&b, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "booking_not_found", "الحجز غير موجود")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"smsContent":      domain.GenerateSMSContent(&b),
		"phone":           b.Phone,
		"username":        b.Username,
		"appointmentDate": b.AppointmentDate,
		"appointmentTime": b.AppointmentTime,
		"smsSent":         b.SmsSent,
		"smsSentAt":       b.SmsSentAt,
	})
}

// ======================================================
// SEND
// ======================================================

func (h *SMSHandler) Send(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, "booking_not_found", "الحجز غير موجود")
		return
	}

	var req SendSMSRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, "invalid_request", "بيانات غير صحيحة")
			return
		}
	}

	updated, err := h.sendUC.Execute(c.Request.Context(), ucBooking.SendSMSInput{
		BookingID:     uint(id),
		CustomMessage: req.CustomMessage,
		Actor:         c.GetString(middleware.ContextUsername),
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "booking_not_found"):
			httperr.NotFound(c, "booking_not_found", "الحجز غير موجود")
		case httperr.IsBusiness(err, "schedule_not_set"):
			httperr.PreconditionFailed(c, "schedule_not_set", "يجب تحديد تاريخ ووقت الموعد قبل إرسال الرسالة")
		default:
			httperr.Internal(c, "failed_to_send_sms", "حدث خطأ في إرسال الرسالة")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "تم إرسال الرسالة بنجاح",
		"smsContent": updated.SmsContent,
		"phone":      updated.Phone,
		"sentAt":     updated.SmsSentAt,
	})
}
