package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront-api/internal/domain"
	"storefront-api/internal/transport/http/response"
)

// bindJSON binds the body and answers the error itself: 413 when the
// body-size cap truncated the read, 400 for anything else unparseable.
func bindJSON(c *gin.Context, obj any) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		c.JSON(http.StatusRequestEntityTooLarge, response.Error{Error: "request body too large"})
		return false
	}
	c.JSON(http.StatusBadRequest, response.Error{Error: err.Error()})
	return false
}

type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// The store holds no rating data; every read gets this constant.
var placeholderRating = Rating{Rate: 3.9, Count: 120}

type productView struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      Rating  `json:"rating"`
}

func viewOf(p domain.Product) productView {
	return productView{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
		Category:    p.Category,
		Image:       p.Image,
		Rating:      placeholderRating,
	}
}

// productIn binds with pointers so an absent key is distinguishable from a
// zero value; the required check is on key presence, not emptiness.
type productIn struct {
	Title       *string  `json:"title"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	Description *string  `json:"description"`
}

// firstMissing reports the required fields in their documented order.
func (in *productIn) firstMissing() string {
	switch {
	case in.Title == nil:
		return "title"
	case in.Category == nil:
		return "category"
	case in.Price == nil:
		return "price"
	case in.Image == nil:
		return "image"
	case in.Description == nil:
		return "description"
	}
	return ""
}

type ProductHandler struct {
	products domain.ProductRepository
	log      *zap.Logger
}

func NewProductHandler(products domain.ProductRepository, l *zap.Logger) *ProductHandler {
	return &ProductHandler{products: products, log: l}
}

func (h *ProductHandler) List(c *gin.Context) {
	items, err := h.products.List(c.Request.Context())
	if err != nil {
		response.DatabaseError(c, err)
		return
	}
	views := make([]productView, 0, len(items))
	for _, p := range items {
		views = append(views, viewOf(p))
	}
	c.JSON(http.StatusOK, views)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "Product")
		return
	}
	p, err := h.products.FindByID(c.Request.Context(), id)
	if err != nil {
		response.DatabaseError(c, err)
		return
	}
	if p == nil {
		response.NotFound(c, "Product")
		return
	}
	c.JSON(http.StatusOK, viewOf(*p))
}

func (h *ProductHandler) Create(c *gin.Context) {
	var in productIn
	if !bindJSON(c, &in) {
		return
	}
	if f := in.firstMissing(); f != "" {
		response.MissingField(c, f)
		return
	}

	p := domain.Product{
		Title:       *in.Title,
		Category:    *in.Category,
		Price:       *in.Price,
		Image:       *in.Image,
		Description: *in.Description,
	}
	if err := h.products.Create(c.Request.Context(), &p); err != nil {
		response.DatabaseError(c, err)
		return
	}
	h.log.Info("product created", zap.Int64("id", p.ID))
	c.JSON(http.StatusCreated, gin.H{
		"message":    "Product created successfully",
		"product_id": p.ID,
	})
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "Product")
		return
	}
	var in productIn
	if !bindJSON(c, &in) {
		return
	}
	if f := in.firstMissing(); f != "" {
		response.MissingField(c, f)
		return
	}

	p := domain.Product{
		ID:          id,
		Title:       *in.Title,
		Category:    *in.Category,
		Price:       *in.Price,
		Image:       *in.Image,
		Description: *in.Description,
	}
	ok, err := h.products.Update(c.Request.Context(), &p)
	if err != nil {
		response.DatabaseError(c, err)
		return
	}
	if !ok {
		response.NotFound(c, "Product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
}

// Delete answers success whether or not the row existed; callers cannot
// tell the two apart. Kept as observed in the original service.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "Product")
		return
	}
	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		response.DatabaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
