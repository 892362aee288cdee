//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"parkspot/internal/domain/catalog"
	"parkspot/internal/handler/api"
	resdto "parkspot/internal/handler/dto/response"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"
	"parkspot/tests/common/builder"
	"parkspot/tests/common/httptest"
	"parkspot/tests/common/testutil"
	commandsmock "parkspot/tests/mock/commands"
	queriesmock "parkspot/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	// Simulates the auth middleware having validated a bearer token.
	withUser := func(h gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("user_id", "user-mock")
			h(c)
		}
	}

	s.router.POST("/bookings/confirm", withUser(s.handler.ConfirmBooking))
	s.router.GET("/bookings", withUser(s.handler.GetUserBookings))
	s.router.GET("/bookings/active", withUser(s.handler.GetActiveBooking))
	s.router.GET("/bookings/:id", withUser(s.handler.GetBooking))
	s.router.POST("/bookings/:id/cancel", withUser(s.handler.CancelBooking))
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestConfirmBooking() {
	url := "/bookings/confirm"
	reqBody := builder.NewBookingBuilder().BuildConfirmRequestDTO()

	s.Run("success: returns 201 with the frozen total", func() {
		s.mockCommands.EXPECT().ConfirmBooking(gomock.Any(), reqBody, "user-mock").
			Return(&commands.ConfirmResult{
				Garage:     catalog.Garage{ID: reqBody.GarageID},
				Slot:       catalog.Slot{ID: reqBody.SlotID, PricePerHour: 6},
				TotalPrice: 12,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.ConfirmBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(12.0, response.TotalPrice)
		s.Equal(reqBody.SlotID, response.Slot.ID)
	})

	s.Run("error: 400 on missing required fields", func() {
		for _, field := range []string{"garageId", "slotId", "vehiclePlate", "durationHours"} {
			s.Run("missing "+field, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: usecase errors map to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{name: "garage not found", err: errs.ErrGarageNotFound, expectCode: http.StatusNotFound, expectMsg: "Garage not found"},
			{name: "slot not found", err: errs.ErrSlotNotFound, expectCode: http.StatusNotFound, expectMsg: "Slot not found"},
			{name: "slot unavailable", err: errs.ErrSlotUnavailable, expectCode: http.StatusConflict, expectMsg: "Slot is not available"},
			{name: "validation failed", err: errs.ErrValidationFailed, expectCode: http.StatusUnprocessableEntity, expectMsg: "Validation failed"},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ConfirmBooking(gomock.Any(), reqBody, "user-mock").
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestGetUserBookings() {
	s.Run("success: lists the user's bookings", func() {
		views := []*queries.BookingView{builder.NewBookingBuilder().BuildView()}
		s.mockQueries.EXPECT().ListUserBookings(gomock.Any(), "user-mock").
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")

		var response []*resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("booking-test", response[0].ID)
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), "booking-test").
			Return(builder.NewBookingBuilder().BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/booking-test", nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("booking-test", response.ID)
	})

	s.Run("error: 404 for unknown id", func() {
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), "booking-absent").
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/booking-absent", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestGetActiveBooking() {
	s.Run("error: 404 when no handoff pointer is set", func() {
		s.mockQueries.EXPECT().GetActiveBooking(gomock.Any()).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/active", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No active booking")
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	url := "/bookings/booking-test/cancel"

	s.Run("success: returns the cancelled view", func() {
		view := builder.NewBookingBuilder().BuildView()
		view.Status = "cancelled"
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), "booking-test").
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cancelled", response.Status)
	})

	s.Run("error: 409 when not cancelable", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), "booking-test").
			Return(nil, errs.ErrBookingNotCancelable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Booking cannot be cancelled")
	})
}
