//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"parkspot/internal/domain/catalog"
	"parkspot/internal/handler/api"
	"parkspot/internal/pkg/errs"
	"parkspot/tests/common/httptest"
	queriesmock "parkspot/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockCatalogQueries
	handler     *api.CatalogHandler
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewCatalogHandler(s.mockQueries)

	s.router.GET("/garages", s.handler.ListGarages)
	s.router.GET("/garages/:id", s.handler.GetGarage)
	s.router.GET("/garages/:id/floors", s.handler.ListFloors)
	s.router.GET("/floors/:floorId/slots", s.handler.ListSlots)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestListGarages() {
	s.Run("success: passes the search query through", func() {
		s.mockQueries.EXPECT().ListGarages(gomock.Any(), "airport").
			Return([]catalog.Garage{{ID: "garage-2", Name: "Airport Express Parking"}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/garages?q=airport", nil, "")

		var response []catalog.Garage
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("garage-2", response[0].ID)
	})
}

func (s *CatalogHandlerTestSuite) TestGetGarage() {
	s.Run("error: 404 for unknown garage", func() {
		s.mockQueries.EXPECT().GetGarage(gomock.Any(), "garage-absent").
			Return(catalog.Garage{}, errs.ErrGarageNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/garages/garage-absent", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Garage not found")
	})
}

func (s *CatalogHandlerTestSuite) TestListSlots() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().ListSlots(gomock.Any(), "floor-a").
			Return([]catalog.Slot{{ID: "slot-1", PricePerHour: 6}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/floors/floor-a/slots", nil, "")

		var response []catalog.Slot
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("slot-1", response[0].ID)
	})

	s.Run("error: 404 for unknown floor", func() {
		s.mockQueries.EXPECT().ListSlots(gomock.Any(), "floor-absent").
			Return(nil, errs.ErrFloorNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/floors/floor-absent/slots", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Floor not found")
	})
}
