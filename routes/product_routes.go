package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"marketplace/stores"
)

func (h *handlers) listProducts(c *gin.Context) {
	var sellerID *primitive.ObjectID
	if hex := c.Query("sellerId"); hex != "" {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sellerId"})
			return
		}
		sellerID = &id
	}

	products, err := h.deps.Products.List(c.Request.Context(), sellerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"products": products,
	})
}

func (h *handlers) createProduct(c *gin.Context) {
	sellerID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sellerId"})
		return
	}

	var body struct {
		Name  string `json:"name" binding:"required"`
		Stock int    `json:"stock" binding:"gte=0"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	product, err := h.deps.Products.Create(c.Request.Context(), sellerID, body.Name, body.Stock)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"product": product,
	})
}

func (h *handlers) getProduct(c *gin.Context) {
	sellerID, productID, ok := h.productParams(c)
	if !ok {
		return
	}

	product, err := h.deps.Products.Get(c.Request.Context(), productID, sellerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"product": product,
	})
}

func (h *handlers) updateProduct(c *gin.Context) {
	sellerID, productID, ok := h.productParams(c)
	if !ok {
		return
	}

	var body struct {
		Name  *string `json:"name"`
		Stock *int    `json:"stock"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if body.Name == nil && body.Stock == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No updates to be performed"})
		return
	}

	err := h.deps.Products.Update(c.Request.Context(), productID, sellerID, stores.ProductUpdate{
		Name:  body.Name,
		Stock: body.Stock,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *handlers) deleteProduct(c *gin.Context) {
	sellerID, productID, ok := h.productParams(c)
	if !ok {
		return
	}

	if err := h.deps.Products.Delete(c.Request.Context(), productID, sellerID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *handlers) productParams(c *gin.Context) (sellerID, productID primitive.ObjectID, ok bool) {
	sellerID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sellerId"})
		return primitive.NilObjectID, primitive.NilObjectID, false
	}

	productID, err = primitive.ObjectIDFromHex(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid productId"})
		return primitive.NilObjectID, primitive.NilObjectID, false
	}

	return sellerID, productID, true
}
