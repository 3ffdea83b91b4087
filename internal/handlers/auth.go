package handlers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"finance_tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	errAllFieldsRequired  = "all fields are required"
	errInvalidCredentials = "invalid credentials"
	errInvalidUserID      = "invalid user id"
)

// Login payload.
type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		// optional structured logging
		if h.log != nil {
			h.log.Infow("bad_request_body", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary      Register a new user
// @Tags         auth
// @Accept       mpfd
// @Produce      json
// @Param        name             formData  string  true   "Display name"
// @Param        email            formData  string  true   "Email (unique)"
// @Param        password         formData  string  true   "Password"
// @Param        profile_picture  formData  file    false  "Profile picture"
// @Success      200  {object}  map[string]interface{}  "success, userId"
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *Handler) register(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")
	if name == "" || email == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errAllFieldsRequired})
		return
	}

	var picture *string
	if file, err := c.FormFile("profile_picture"); err == nil && file != nil {
		stored := uuid.NewString() + filepath.Ext(file.Filename)
		if err := c.SaveUploadedFile(file, filepath.Join(h.uploadDir, stored)); err != nil {
			h.logAndJSONError(c, http.StatusInternalServerError, "failed to store profile picture",
				"auth_register_upload_failed", err, "email", email)
			return
		}
		picture = &stored
	}

	id, err := h.services.Register(service.RegisterParams{
		Name:           name,
		Email:          email,
		Password:       password,
		ProfilePicture: picture,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "registration failed",
			"auth_register_failed", err, "email", email)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "userId": id})
}

// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  loginRequest  true  "Credentials"
// @Success      200  {object}  map[string]interface{}  "success, token, userId, name, profile_picture"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	res, err := h.services.Login(input.Email, input.Password)
	if err != nil {
		// unknown email and wrong password are deliberately indistinguishable
		// to the caller; the log keeps the real cause
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrInvalidPassword) {
			if h.log != nil {
				h.log.Infow("auth_login_rejected", "email", input.Email, "err", err)
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": errInvalidCredentials})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "login failed",
			"auth_login_failed", err, "email", input.Email)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"token":           res.Token,
		"userId":          res.User.ID,
		"name":            res.User.Name,
		"profile_picture": res.User.ProfilePicture,
	})
}

// @Summary      Get own profile
// @Description  The token's user id must match the requested id.
// @Tags         auth
// @Produce      json
// @Param        id  path  int  true  "User id"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/auth/profile/{id} [get]
// @Security     BearerAuth
func (h *Handler) getProfile(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidUserID})
		return
	}

	// profile is private to its owner
	if id != callerID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	u, err := h.services.Profile(id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load profile",
			"auth_profile_failed", err, "id", id)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":              u.ID,
		"name":            u.Name,
		"email":           u.Email,
		"profile_picture": u.ProfilePicture,
	})
}
