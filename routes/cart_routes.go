package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"marketplace/controllers"
)

func (h *handlers) getCart(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	cart, err := h.deps.Carts.Get(c.Request.Context(), uid)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":   true,
		"cart": cart,
	})
}

func (h *handlers) addProductToCart(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	var body struct {
		Product struct {
			ID       string `json:"id" binding:"required"`
			SellerID string `json:"sellerId" binding:"required"`
			Quantity int    `json:"quantity" binding:"required,gt=0"`
		} `json:"product" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	productID, err := primitive.ObjectIDFromHex(body.Product.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid productId"})
		return
	}
	sellerID, err := primitive.ObjectIDFromHex(body.Product.SellerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sellerId"})
		return
	}

	err = h.deps.Carts.AddProduct(c.Request.Context(), uid, controllers.AddProductInput{
		ProductID: productID,
		SellerID:  sellerID,
		Quantity:  body.Product.Quantity,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *handlers) removeProductFromCart(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	var body struct {
		ProductIDs []string `json:"productIds" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	productIDs := make([]primitive.ObjectID, 0, len(body.ProductIDs))
	for _, hex := range body.ProductIDs {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid productId"})
			return
		}
		productIDs = append(productIDs, id)
	}

	if err := h.deps.Carts.RemoveProduct(c.Request.Context(), uid, productIDs); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
