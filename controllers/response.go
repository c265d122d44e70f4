package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop-service/models"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    interface{}       `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func respondOK(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{Success: true, Message: message, Data: data})
}

func respondError(c *gin.Context, code int, message string, err error) {
	resp := Response{Success: false, Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(code, resp)
}

func respondValidation(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Message: "Invalid data.",
		Errors:  fields,
	})
}

// respondServiceError maps domain errors to the taxonomy: validation -> 400,
// missing entity -> 404, anything else -> 500 with the fallback message.
func respondServiceError(c *gin.Context, fallback string, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		respondValidation(c, verr.Fields)
	case errors.Is(err, models.ErrProductNotFound):
		respondError(c, http.StatusNotFound, "Product not found.", err)
	case errors.Is(err, models.ErrOrderNotFound):
		respondError(c, http.StatusNotFound, "Order not found.", err)
	case errors.Is(err, models.ErrUserNotFound):
		respondError(c, http.StatusNotFound, "User not found.", err)
	default:
		respondError(c, http.StatusInternalServerError, fallback, err)
	}
}
