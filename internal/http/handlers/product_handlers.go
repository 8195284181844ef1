package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/drax210310/jugueteria-backend/domain"
)

// ProductHandlers handles catalog HTTP requests
type ProductHandlers struct {
	catalogSvc domain.CatalogService
}

// NewProductHandlers creates new product handlers
func NewProductHandlers(catalogSvc domain.CatalogService) *ProductHandlers {
	return &ProductHandlers{catalogSvc: catalogSvc}
}

// ProductRequest represents a product create/update request
type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Stock       int     `json:"stock" binding:"gte=0"`
	LineID      uint    `json:"line_id"`
}

// List handles GET /api/products
func (h *ProductHandlers) List(c *gin.Context) {
	products, err := h.catalogSvc.ListProducts(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}

	payload := make([]gin.H, 0, len(products))
	for i := range products {
		payload = append(payload, productPayload(&products[i]))
	}
	respond(c, http.StatusOK, "products retrieved", gin.H{
		"products": payload,
		"total":    len(products),
	})
}

// Get handles GET /api/products/:id
func (h *ProductHandlers) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respond(c, http.StatusBadRequest, "invalid product id", nil)
		return
	}

	product, err := h.catalogSvc.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, "product retrieved", gin.H{"product": productPayload(product)})
}

// Create handles POST /api/products (admin only).
func (h *ProductHandlers) Create(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "name and a positive price are required", nil)
		return
	}

	product := &domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		LineID:      req.LineID,
	}
	if err := h.catalogSvc.CreateProduct(c.Request.Context(), product); err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusCreated, "product created successfully", gin.H{"product_id": product.ID})
}

// Update handles PUT /api/products/:id (admin only).
func (h *ProductHandlers) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respond(c, http.StatusBadRequest, "invalid product id", nil)
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "name and a positive price are required", nil)
		return
	}

	product := &domain.Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		LineID:      req.LineID,
	}
	if err := h.catalogSvc.UpdateProduct(c.Request.Context(), product); err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, "product updated successfully", nil)
}

// Delete handles DELETE /api/products/:id (admin only).
func (h *ProductHandlers) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respond(c, http.StatusBadRequest, "invalid product id", nil)
		return
	}

	if err := h.catalogSvc.DeleteProduct(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, "product deleted successfully", nil)
}

// ListLines handles GET /api/product-lines
func (h *ProductHandlers) ListLines(c *gin.Context) {
	lines, err := h.catalogSvc.ListProductLines(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}

	payload := make([]gin.H, 0, len(lines))
	for _, line := range lines {
		payload = append(payload, gin.H{"id": line.ID, "name": line.Name})
	}
	respond(c, http.StatusOK, "product lines retrieved", gin.H{"product_lines": payload})
}

// ListMunicipalities handles GET /api/municipalities
func (h *ProductHandlers) ListMunicipalities(c *gin.Context) {
	municipalities, err := h.catalogSvc.ListMunicipalities(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}

	payload := make([]gin.H, 0, len(municipalities))
	for _, m := range municipalities {
		payload = append(payload, gin.H{"id": m.ID, "name": m.Name})
	}
	respond(c, http.StatusOK, "municipalities retrieved", gin.H{
		"municipalities": payload,
		"total":          len(municipalities),
	})
}

// ListDepartments handles GET /api/departments
func (h *ProductHandlers) ListDepartments(c *gin.Context) {
	departments, err := h.catalogSvc.ListDepartments(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}

	payload := make([]gin.H, 0, len(departments))
	for _, d := range departments {
		payload = append(payload, gin.H{
			"id":                d.ID,
			"name":              d.Name,
			"municipality_id":   d.MunicipalityID,
			"municipality_name": d.MunicipalityName,
		})
	}
	respond(c, http.StatusOK, "departments retrieved", gin.H{
		"departments": payload,
		"total":       len(departments),
	})
}

func productPayload(p *domain.Product) gin.H {
	return gin.H{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"stock":       p.Stock,
		"line_id":     p.LineID,
		"line_name":   p.LineName,
	}
}
