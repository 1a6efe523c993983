package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"storefront-api/internal/domain"
)

func shirtBody() map[string]any {
	return map[string]any{
		"title":       "Shirt",
		"category":    "Clothing",
		"price":       19.99,
		"image":       "http://x/img.png",
		"description": "Cotton",
	}
}

func requireRating(t *testing.T, m map[string]any) {
	t.Helper()
	rating, ok := m["rating"].(map[string]any)
	require.True(t, ok, "expected rating object")
	require.Equal(t, 3.9, rating["rate"])
	require.EqualValues(t, 120, rating["count"])
}

func TestListProducts(t *testing.T) {
	r, db := newTestEnv(t)

	rec := doJSON(t, r, http.MethodGet, "/products/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String())

	db.Create(&domain.Product{Title: "a", Category: "c1", Price: 1.5, Image: "http://x/a", Description: "d1"})
	db.Create(&domain.Product{Title: "b", Category: "c2", Price: 2.5, Image: "http://x/b", Description: "d2"})

	rec = doJSON(t, r, http.MethodGet, "/products/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 2)
	require.Equal(t, "a", items[0]["title"])
	require.Equal(t, "b", items[1]["title"])
	for _, it := range items {
		requireRating(t, it)
	}

	// the route also answers without the trailing slash
	rec = doJSON(t, r, http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGetProduct(t *testing.T) {
	r, db := newTestEnv(t)

	p := domain.Product{Title: "Shirt", Category: "Clothing", Price: 19.99, Image: "http://x/img.png", Description: "Cotton"}
	db.Create(&p)

	rec := doJSON(t, r, http.MethodGet, fmt.Sprintf("/products/%d", p.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	m := decode(t, rec)
	require.EqualValues(t, p.ID, m["id"])
	require.Equal(t, "Shirt", m["title"])
	require.Equal(t, "Clothing", m["category"])
	require.Equal(t, 19.99, m["price"])
	require.Equal(t, "http://x/img.png", m["image"])
	require.Equal(t, "Cotton", m["description"])
	requireRating(t, m)
}

func TestGetProductNotFound(t *testing.T) {
	r, _ := newTestEnv(t)

	rec := doJSON(t, r, http.MethodGet, "/products/999", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Product not found", decode(t, rec)["error"])

	rec = doJSON(t, r, http.MethodGet, "/products/abc", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Product not found", decode(t, rec)["error"])
}

func TestCreateProduct(t *testing.T) {
	r, _ := newTestEnv(t)

	rec := doJSON(t, r, http.MethodPost, "/products", shirtBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	m := decode(t, rec)
	require.Equal(t, "Product created successfully", m["message"])
	id, ok := m["product_id"].(float64)
	require.True(t, ok, "expected numeric product_id")

	rec = doJSON(t, r, http.MethodGet, fmt.Sprintf("/products/%d", int64(id)), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode(t, rec)
	require.Equal(t, "Shirt", got["title"])
	require.Equal(t, 19.99, got["price"])
	requireRating(t, got)
}

func TestCreateProductMissingFields(t *testing.T) {
	r, _ := newTestEnv(t)

	for _, field := range []string{"title", "category", "price", "image", "description"} {
		body := shirtBody()
		delete(body, field)

		rec := doJSON(t, r, http.MethodPost, "/products", body)
		require.Equal(t, http.StatusBadRequest, rec.Code, "field %s", field)
		require.Equal(t, fmt.Sprintf("'%s' is required", field), decode(t, rec)["error"])
	}
}

func TestCreateProductBodyTooLarge(t *testing.T) {
	r, _ := newTestEnv(t)

	body := shirtBody()
	body["description"] = strings.Repeat("x", 1<<20+100)

	rec := doJSON(t, r, http.MethodPost, "/products", body)
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	require.Equal(t, "request body too large", decode(t, rec)["error"])
}

func TestUpdateProduct(t *testing.T) {
	r, db := newTestEnv(t)

	p := domain.Product{Title: "old", Category: "c", Price: 1, Image: "http://x/old", Description: "old"}
	db.Create(&p)

	body := map[string]any{
		"title":       "new",
		"category":    "c2",
		"price":       2.5,
		"image":       "http://x/new",
		"description": "new desc",
	}
	rec := doJSON(t, r, http.MethodPut, fmt.Sprintf("/products/%d", p.ID), body)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Product updated successfully", decode(t, rec)["message"])

	rec = doJSON(t, r, http.MethodGet, fmt.Sprintf("/products/%d", p.ID), nil)
	got := decode(t, rec)
	require.Equal(t, "new", got["title"])
	require.Equal(t, "c2", got["category"])
	require.Equal(t, 2.5, got["price"])
	require.Equal(t, "http://x/new", got["image"])
	require.Equal(t, "new desc", got["description"])
}

func TestUpdateProductNotFound(t *testing.T) {
	r, _ := newTestEnv(t)

	rec := doJSON(t, r, http.MethodPut, "/products/999", shirtBody())
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Product not found", decode(t, rec)["error"])
}

func TestUpdateProductMissingField(t *testing.T) {
	r, db := newTestEnv(t)

	p := domain.Product{Title: "old", Category: "c", Price: 1, Image: "i", Description: "d"}
	db.Create(&p)

	body := shirtBody()
	delete(body, "price")
	rec := doJSON(t, r, http.MethodPut, fmt.Sprintf("/products/%d", p.ID), body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "'price' is required", decode(t, rec)["error"])
}

// Deleting an absent id still answers success; the row-affected count is
// deliberately not consulted.
func TestDeleteProduct(t *testing.T) {
	r, db := newTestEnv(t)

	p := domain.Product{Title: "x", Category: "c", Price: 1, Image: "i", Description: "d"}
	db.Create(&p)

	rec := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/products/%d", p.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Product deleted successfully", decode(t, rec)["message"])

	rec = doJSON(t, r, http.MethodGet, fmt.Sprintf("/products/%d", p.ID), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/products/%d", p.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Product deleted successfully", decode(t, rec)["message"])
}
