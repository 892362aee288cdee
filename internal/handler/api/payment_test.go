//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"parkspot/internal/handler/api"
	resdto "parkspot/internal/handler/dto/response"
	"parkspot/internal/pkg/errs"
	"parkspot/tests/common/builder"
	"parkspot/tests/common/httptest"
	"parkspot/tests/common/testutil"
	commandsmock "parkspot/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	handler      *api.PaymentHandler
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.handler = api.NewPaymentHandler(s.mockCommands)

	s.router.POST("/payments", func(c *gin.Context) {
		c.Set("user_id", "user-mock")
		s.handler.CompletePayment(c)
	})
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) TestCompletePayment() {
	url := "/payments"
	reqBody := builder.NewBookingBuilder().BuildPaymentRequestDTO()

	s.Run("success: returns the activated booking", func() {
		view := builder.NewBookingBuilder().BuildView()
		view.Status = "active"
		s.mockCommands.EXPECT().CompletePayment(gomock.Any(), reqBody, "user-mock").
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("active", response.Status)
	})

	s.Run("redirect: incomplete selection sends the caller home", func() {
		incomplete := builder.NewBookingBuilder()
		incomplete.ID = ""
		req := incomplete.BuildPaymentRequestDTO()

		s.mockCommands.EXPECT().CompletePayment(gomock.Any(), req, "user-mock").
			Return(nil, errs.ErrIncompleteSelection).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")

		s.Equal(http.StatusSeeOther, rec.Code)
		s.Equal("/home", rec.Header().Get("Location"))
	})

	s.Run("redirect: an unreadable body is treated the same way", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("durationHours", "not-a-number"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")

		s.Equal(http.StatusSeeOther, rec.Code)
		s.Equal("/home", rec.Header().Get("Location"))
	})

	s.Run("error: 422 on validation failure", func() {
		s.mockCommands.EXPECT().CompletePayment(gomock.Any(), reqBody, "user-mock").
			Return(nil, errs.ErrValidationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
	})
}
