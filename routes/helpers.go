package routes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"marketplace/errs"
)

// respondError maps domain errors onto HTTP statuses. Anything outside the
// taxonomy is an internal error whose message is not exposed.
func (h *handlers) respondError(c *gin.Context, err error) {
	var notFound *errs.NotFoundError
	var businessLogic *errs.BusinessLogicError
	var duplicateKey *errs.DuplicateKeyError

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.As(err, &businessLogic):
		c.JSON(http.StatusConflict, gin.H{"error": businessLogic.Error()})
	case errors.As(err, &duplicateKey):
		c.JSON(http.StatusConflict, gin.H{"error": duplicateKey.Error()})
	default:
		h.deps.Log.Error("internal error",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// userID reads the authenticated user's id set by the auth middleware.
func userID(c *gin.Context) (primitive.ObjectID, bool) {
	raw, exists := c.Get("userId")
	if !exists {
		return primitive.NilObjectID, false
	}

	hex, ok := raw.(string)
	if !ok {
		return primitive.NilObjectID, false
	}

	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, false
	}

	return id, true
}
