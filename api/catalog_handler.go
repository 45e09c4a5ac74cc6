package api

import (
	"context"
	"net/http"

	"github.com/circulo-sport/courtdesk/catalog"
	"github.com/gin-gonic/gin"
)

type CatalogService interface {
	Courts() []catalog.Court
	CourtName(id string) string
	ListExtras(ctx context.Context) ([]catalog.Extra, error)
	SaveExtra(ctx context.Context, extra catalog.Extra) (catalog.Extra, error)
	DeleteExtra(ctx context.Context, id string) error
}

type CatalogHandler struct {
	service CatalogService
}

func NewCatalogHandler(service CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func (h *CatalogHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/courts", h.ListCourts)
	rg.GET("/extras", h.ListExtras)
	rg.POST("/extras", h.CreateExtra)
	rg.PUT("/extras/:id", h.ModifyExtra)
	rg.DELETE("/extras/:id", h.DeleteExtra)
}

func (h *CatalogHandler) ListCourts(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, h.service.Courts())
}

func (h *CatalogHandler) ListExtras(c *gin.Context) {
	extras, err := h.service.ListExtras(c.Request.Context())

	if err != nil {
		respondError(c, err, "failed to retrieve extras")
		return
	}

	c.IndentedJSON(http.StatusOK, extras)
}

func (h *CatalogHandler) CreateExtra(c *gin.Context) {
	var extra catalog.Extra

	if err := c.ShouldBindJSON(&extra); err != nil {
		badRequest(c, err, "failed to parse JSON body")
		return
	}

	extra.ID = ""

	saved, err := h.service.SaveExtra(c.Request.Context(), extra)

	if err != nil {
		respondError(c, err, "failed to create extra")
		return
	}

	c.JSON(http.StatusCreated, saved)
}

func (h *CatalogHandler) ModifyExtra(c *gin.Context) {
	var extra catalog.Extra

	if err := c.ShouldBindJSON(&extra); err != nil {
		badRequest(c, err, "failed to parse JSON body")
		return
	}

	extra.ID = c.Param("id")

	saved, err := h.service.SaveExtra(c.Request.Context(), extra)

	if err != nil {
		respondError(c, err, "failed to modify extra")
		return
	}

	c.IndentedJSON(http.StatusOK, saved)
}

func (h *CatalogHandler) DeleteExtra(c *gin.Context) {
	if err := h.service.DeleteExtra(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "failed to delete extra")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "extra deleted"})
}
