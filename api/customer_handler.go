package api

import (
	"context"
	"net/http"

	"github.com/circulo-sport/courtdesk/customer"
	"github.com/gin-gonic/gin"
)

type CustomerService interface {
	List(ctx context.Context) ([]customer.Customer, error)
	Get(ctx context.Context, id string) (customer.Customer, error)
	Search(ctx context.Context, query string) ([]customer.Customer, error)
	Save(ctx context.Context, c customer.Customer) (customer.Customer, error)
	Delete(ctx context.Context, id string) error
}

type CustomerHandler struct {
	service CustomerService
}

func NewCustomerHandler(service CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

func (h *CustomerHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Modify)
	rg.DELETE("/:id", h.Delete)
}

// List searches by name with ?q=; without it every customer is returned.
func (h *CustomerHandler) List(c *gin.Context) {
	var (
		customers []customer.Customer
		err       error
	)

	if q, ok := c.GetQuery("q"); ok {
		customers, err = h.service.Search(c.Request.Context(), q)
	} else {
		customers, err = h.service.List(c.Request.Context())
	}

	if err != nil {
		respondError(c, err, "failed to retrieve customers")
		return
	}

	c.IndentedJSON(http.StatusOK, customers)
}

func (h *CustomerHandler) GetByID(c *gin.Context) {
	found, err := h.service.Get(c.Request.Context(), c.Param("id"))

	if err != nil {
		respondError(c, err, "failed to fetch customer")
		return
	}

	c.IndentedJSON(http.StatusOK, found)
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var body customer.Customer

	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err, "failed to parse JSON body")
		return
	}

	body.ID = ""

	saved, err := h.service.Save(c.Request.Context(), body)

	if err != nil {
		respondError(c, err, "failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, saved)
}

func (h *CustomerHandler) Modify(c *gin.Context) {
	var body customer.Customer

	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err, "failed to parse JSON body")
		return
	}

	body.ID = c.Param("id")

	if _, err := h.service.Get(c.Request.Context(), body.ID); err != nil {
		respondError(c, err, "failed to modify customer")
		return
	}

	saved, err := h.service.Save(c.Request.Context(), body)

	if err != nil {
		respondError(c, err, "failed to modify customer")
		return
	}

	c.IndentedJSON(http.StatusOK, saved)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "failed to delete customer")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "customer deleted"})
}
