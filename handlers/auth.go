package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/Kavitha0809/Redesign-IRCTC/store"

	"github.com/gin-gonic/gin"
)

type AuthRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Action   string `json:"action" binding:"required"` // signup | login
}

// AuthHandler serves POST /api/auth against the flat-file credential store.
// Demo-grade by design: plaintext passwords, no sessions.
func AuthHandler(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AuthRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		switch req.Action {
		case "signup":
			err := users.Signup(req.Email, req.Password)
			if errors.Is(err, store.ErrUserExists) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
				return
			}
			if err != nil {
				log.Printf("❌ Signup failed: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}
			c.JSON(http.StatusCreated, gin.H{"message": "User created successfully"})

		case "login":
			user, err := users.Login(req.Email, req.Password)
			if errors.Is(err, store.ErrUserNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found. Please sign up first."})
				return
			}
			if errors.Is(err, store.ErrWrongPassword) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
				return
			}
			if err != nil {
				log.Printf("❌ Login failed: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"message": "Login successful",
				"user":    gin.H{"email": user.Email},
			})

		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action"})
		}
	}
}
