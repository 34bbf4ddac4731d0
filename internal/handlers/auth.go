package handlers

import (
	"errors"
	"net/http"

	"recollect/internal/services"

	"github.com/gin-gonic/gin"
)

type SignupRequest struct {
	Username string `json:"username" binding:"required,min=4"`
	Password string `json:"password" binding:"required,min=6"`
}

type SigninRequest struct {
	Username string `json:"username" binding:"required,min=4"`
	Password string `json:"password" binding:"required,min=6"`
}

type DeleteAccountRequest struct {
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if !h.bindJSON(c, &req) {
		return
	}

	user, err := h.userService.Register(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateUsername) {
			c.JSON(http.StatusConflict, gin.H{"message": "Username already exists"})
			return
		}
		h.respondInternalError(c, err)
		return
	}

	h.auditService.LogAction(&user.ID, services.AuditRegister, user.Username, nil, c.ClientIP())

	c.JSON(http.StatusOK, gin.H{"message": "User Signed Up"})
}

func (h *Handler) Signin(c *gin.Context) {
	var req SigninRequest
	if !h.bindJSON(c, &req) {
		return
	}

	user, err := h.userService.Authenticate(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"message": "User does not exist"})
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid Password"})
		default:
			h.respondInternalError(c, err)
		}
		return
	}

	token, err := h.tokenService.Issue(user.ID, user.Username)
	if err != nil {
		h.respondInternalError(c, err)
		return
	}

	h.auditService.LogAction(&user.ID, services.AuditLogin, user.Username, nil, c.ClientIP())

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"expiresIn": "12h",
	})
}

// DeleteAccount verifies the password again, then removes the user with
// all their content and share link in one transaction.
func (h *Handler) DeleteAccount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req DeleteAccountRequest
	if !h.bindJSON(c, &req) {
		return
	}

	if err := h.userService.VerifyPassword(userID, req.Password); err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"message": "User not found"})
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid Password"})
		default:
			h.respondInternalError(c, err)
		}
		return
	}

	if err := h.userService.DeleteAccount(userID); err != nil {
		h.respondInternalError(c, err)
		return
	}

	h.auditService.LogAction(&userID, services.AuditDeleteAccount, "", nil, c.ClientIP())

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}
