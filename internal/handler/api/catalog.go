package api

import (
	"errors"
	"net/http"

	"parkspot/internal/pkg/errs"
	"parkspot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogQueries: catalogQueries,
	}
}

// @Summary List garages
// @Description List garages, optionally filtered by a search query
// @Tags catalog
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {array} catalog.Garage
// @Router /garages [get]
func (h *CatalogHandler) ListGarages(c *gin.Context) {
	garages, err := h.catalogQueries.ListGarages(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, garages)
}

// @Summary Get garage
// @Description Get a garage with its floors and slots
// @Tags catalog
// @Produce json
// @Param id path string true "Garage ID"
// @Success 200 {object} catalog.Garage
// @Failure 404 {object} map[string]string
// @Router /garages/{id} [get]
func (h *CatalogHandler) GetGarage(c *gin.Context) {
	garage, err := h.catalogQueries.GetGarage(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrGarageNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Garage not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, garage)
}

// @Summary List floors
// @Description List the floors of a garage
// @Tags catalog
// @Produce json
// @Param id path string true "Garage ID"
// @Success 200 {array} catalog.Floor
// @Failure 404 {object} map[string]string
// @Router /garages/{id}/floors [get]
func (h *CatalogHandler) ListFloors(c *gin.Context) {
	floors, err := h.catalogQueries.ListFloors(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrGarageNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Garage not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, floors)
}

// @Summary List slots
// @Description List the slots of a floor
// @Tags catalog
// @Produce json
// @Param floorId path string true "Floor ID"
// @Success 200 {array} catalog.Slot
// @Failure 404 {object} map[string]string
// @Router /floors/{floorId}/slots [get]
func (h *CatalogHandler) ListSlots(c *gin.Context) {
	slots, err := h.catalogQueries.ListSlots(c.Request.Context(), c.Param("floorId"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrFloorNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Floor not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, slots)
}
