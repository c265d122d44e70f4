package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"shop-service/middlewares"
	"shop-service/repositories"
	"shop-service/utils"
)

var userRepository repositories.UserRepository

func SetUserRepository(repo repositories.UserRepository) {
	userRepository = repo
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login issues the JWT the auth middleware expects on mutating routes.
func Login(c *gin.Context) {
	defer func() {
		ok := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOperation("login", ok)
	}()

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, map[string]string{"body": err.Error()})
		return
	}

	user, err := userRepository.GetByEmail(req.Email)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid credentials.", nil)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid credentials.", nil)
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to issue token.", err)
		return
	}
	respondOK(c, http.StatusOK, "Login successful.", gin.H{"token": token})
}
