package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/drax210310/jugueteria-backend/domain"
	"github.com/drax210310/jugueteria-backend/internal/http/middleware"
)

// SaleHandlers handles sale HTTP requests
type SaleHandlers struct {
	saleSvc domain.SaleService
}

// NewSaleHandlers creates new sale handlers
func NewSaleHandlers(saleSvc domain.SaleService) *SaleHandlers {
	return &SaleHandlers{saleSvc: saleSvc}
}

// SaleItemRequest is one position of a sale request.
type SaleItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

// CreateSaleRequest represents a sale creation request. The sale is always
// recorded for the authenticated caller; prices come from the catalog.
type CreateSaleRequest struct {
	Items []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

// Create handles POST /api/sales
func (h *SaleHandlers) Create(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		respondErr(c, domain.ErrUnauthenticated)
		return
	}

	var req CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "at least one item with a positive quantity is required", nil)
		return
	}

	items := make([]domain.SaleItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.SaleItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	sale, err := h.saleSvc.CreateSale(c.Request.Context(), identity.UserID, items)
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusCreated, "sale recorded successfully", gin.H{
		"sale_id": sale.ID,
		"total":   sale.Total,
	})
}

// List handles GET /api/sales (admin only, enforced by middleware).
func (h *SaleHandlers) List(c *gin.Context) {
	sales, err := h.saleSvc.ListSales(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}

	payload := make([]gin.H, 0, len(sales))
	for _, s := range sales {
		items := make([]gin.H, 0, len(s.Items))
		for _, it := range s.Items {
			items = append(items, gin.H{
				"product_id": it.ProductID,
				"quantity":   it.Quantity,
				"unit_price": it.UnitPrice,
			})
		}
		payload = append(payload, gin.H{
			"id":         s.ID,
			"user_id":    s.UserID,
			"total":      s.Total,
			"items":      items,
			"created_at": s.CreatedAt,
		})
	}
	respond(c, http.StatusOK, "sales retrieved", gin.H{
		"sales": payload,
		"total": len(sales),
	})
}
