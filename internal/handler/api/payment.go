package api

import (
	"errors"
	"net/http"

	reqdto "parkspot/internal/handler/dto/request"
	resdto "parkspot/internal/handler/dto/response"
	"parkspot/internal/handler/middleware"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	bookingCommands commands.BookingCommands
}

func NewPaymentHandler(bookingCommands commands.BookingCommands) *PaymentHandler {
	return &PaymentHandler{
		bookingCommands: bookingCommands,
	}
}

// @Summary Complete payment
// @Description Settle the confirmed selection and activate the booking. A
// payload missing its upstream selection is redirected to the home entry
// point instead of being rejected.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PaymentRequest true "Payment request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 303 {string} string "See Other"
// @Failure 422 {object} map[string]string
// @Router /payments [post]
func (h *PaymentHandler) CompletePayment(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// An unreadable body is treated the same as a missing selection:
		// send the caller back to the start of the flow.
		c.Redirect(http.StatusSeeOther, "/home")
		return
	}

	view, err := h.bookingCommands.CompletePayment(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrIncompleteSelection):
			c.Redirect(http.StatusSeeOther, "/home")
		case errors.Is(err, errs.ErrValidationFailed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}
