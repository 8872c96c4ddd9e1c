package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"influencer-hub/internal/auth"
	"influencer-hub/internal/domain"
	"influencer-hub/internal/service"
	"influencer-hub/internal/storage"
)

// imageFormField is the multipart field the profile image must arrive under.
const imageFormField = "profileImage"

// Handler wires HTTP routes to domain services.
type Handler struct {
	users     service.UserService
	profiles  service.ProfileService
	storage   storage.Service
	uploadDir string
	jwtSecret string
	tokenTTL  time.Duration
}

func NewHandler(users service.UserService, profiles service.ProfileService, store storage.Service, uploadDir, jwtSecret string, tokenTTL time.Duration) *Handler {
	return &Handler{
		users:     users,
		profiles:  profiles,
		storage:   store,
		uploadDir: uploadDir,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	router.POST("/signup", h.signup)
	router.POST("/login", h.login)
	router.GET("/influencerprofile", h.listProfiles)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": "ok"})
	})

	authed := router.Group("/", h.authMiddleware())
	{
		authed.GET("/me", h.me)
		authed.POST("/influencers", h.createProfile)
		authed.GET("/influencers/me", h.myProfile)
		authed.GET("/storage/objects", h.listObjects)
	}

	if h.uploadDir != "" {
		router.Static("/uploads", h.uploadDir)
	}
}

type credentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.users.Register(c.Request.Context(), req.Email, req.Password); err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email already registered"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "user created"})
}

func (h *Handler) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	token, err := auth.GenerateToken(user.ID, h.jwtSecret, h.tokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *Handler) me(c *gin.Context) {
	user, err := h.users.GetByID(c.Request.Context(), currentUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"email": user.Email})
}

func (h *Handler) createProfile(c *gin.Context) {
	file, err := c.FormFile(imageFormField)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "profile image is required"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "profile image is required"})
		return
	}
	defer src.Close()

	fields := service.ProfileFields{
		YoutubeLink:   c.PostForm("youtubeLink"),
		InstagramLink: c.PostForm("instagramLink"),
		AccountName:   c.PostForm("accountName"),
		Email:         c.PostForm("email"),
		Followers:     c.PostForm("followers"),
		Category:      c.PostForm("category"),
	}
	image := service.ImageUpload{Filename: file.Filename, Reader: src}

	if _, err := h.profiles.CreateProfile(c.Request.Context(), fields, image, currentUserID(c)); err != nil {
		if errors.Is(err, service.ErrInvalidProfile) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "profile created"})
}

func (h *Handler) myProfile(c *gin.Context) {
	profile, err := h.profiles.GetByOwner(c.Request.Context(), currentUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profileToResponse(*profile))
}

func (h *Handler) listProfiles(c *gin.Context) {
	profiles, err := h.profiles.ListProfiles(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]ProfileResponse, len(profiles))
	for i := range profiles {
		resp[i] = profileToResponse(profiles[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) listObjects(c *gin.Context) {
	objects, err := h.storage.ListObjects(c.Request.Context(), c.Query("prefix"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]StorageObjectResponse, len(objects))
	for i := range objects {
		resp[i] = objectToResponse(objects[i])
	}
	c.JSON(http.StatusOK, resp)
}

type ProfileResponse struct {
	ID               string `json:"id"`
	YoutubeLink      string `json:"youtubeLink"`
	InstagramLink    string `json:"instagramLink"`
	AccountName      string `json:"accountName"`
	Email            string `json:"email"`
	Followers        string `json:"followers"`
	Category         string `json:"category"`
	ProfileImagePath string `json:"profileImagePath"`
	OwnerUserID      string `json:"ownerUserId"`
	CreatedAt        string `json:"createdAt"`
}

type StorageObjectResponse struct {
	Key          string  `json:"key"`
	Size         int64   `json:"size"`
	LastModified *string `json:"last_modified,omitempty"`
}

func profileToResponse(profile domain.InfluencerProfile) ProfileResponse {
	return ProfileResponse{
		ID:               profile.ID,
		YoutubeLink:      profile.YoutubeLink,
		InstagramLink:    profile.InstagramLink,
		AccountName:      profile.AccountName,
		Email:            profile.Email,
		Followers:        profile.Followers,
		Category:         profile.Category,
		ProfileImagePath: profile.ProfileImagePath,
		OwnerUserID:      profile.OwnerUserID,
		CreatedAt:        profile.CreatedAt.Format(time.RFC3339),
	}
}

func objectToResponse(obj storage.ObjectInfo) StorageObjectResponse {
	resp := StorageObjectResponse{
		Key:  obj.Key,
		Size: obj.Size,
	}
	if obj.LastModified != nil && !obj.LastModified.IsZero() {
		v := obj.LastModified.Format(time.RFC3339)
		resp.LastModified = &v
	}
	return resp
}
