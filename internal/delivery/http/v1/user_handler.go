package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/storage"

	"github.com/gin-gonic/gin"
)

// 10 MB resume/logo cap
const maxUploadBytes = 10 << 20

type UserHandler struct {
	profileUC domain.ProfileUsecase
	storage   *storage.Client
}

func NewUserHandler(protected *gin.RouterGroup, uploadLimiter gin.HandlerFunc, profileUC domain.ProfileUsecase, storageClient *storage.Client) {
	handler := &UserHandler{
		profileUC: profileUC,
		storage:   storageClient,
	}

	users := protected.Group("/users")
	{
		users.PUT("/profile", handler.UpdateProfile)
		users.POST("/upload", uploadLimiter, handler.Upload)
	}

	protected.GET("/onboarding/status", handler.OnboardingStatus)
}

type UpdateSeekerProfileRequest struct {
	Name    string                `json:"name"`
	Profile *domain.SeekerProfile `json:"profile" binding:"required"`
}

type UpdateEmployerProfileRequest struct {
	Name    string                  `json:"name"`
	Profile *domain.EmployerProfile `json:"profile" binding:"required"`
}

// UpdateProfile godoc
// @Summary      Update profile
// @Description  Replace the caller's role-specific profile document
// @Tags         users
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.User}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /users/profile [put]
// @Security     BearerAuth
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	// The body shape is dictated by the caller's stored role, not by the
	// request: a seeker cannot smuggle employer fields and vice versa.
	switch role {
	case domain.RoleJobSeeker:
		var req UpdateSeekerProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(apperror.BadRequest(err.Error()))
			return
		}
		user, err := h.profileUC.UpdateSeekerProfile(c.Request.Context(), userID, req.Name, req.Profile)
		if err != nil {
			c.Error(err)
			return
		}
		response.Success(c, http.StatusOK, "Profile updated", user)

	case domain.RoleEmployer:
		var req UpdateEmployerProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(apperror.BadRequest(err.Error()))
			return
		}
		user, err := h.profileUC.UpdateEmployerProfile(c.Request.Context(), userID, req.Name, req.Profile)
		if err != nil {
			c.Error(err)
			return
		}
		response.Success(c, http.StatusOK, "Profile updated", user)

	default:
		c.Error(apperror.Forbidden("Unknown role"))
	}
}

// Upload godoc
// @Summary      Upload a file
// @Description  Upload a resume, photo, or logo to blob storage and get back its URL
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "File to upload"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /users/upload [post]
// @Security     BearerAuth
func (h *UserHandler) Upload(c *gin.Context) {
	if h.storage == nil || !h.storage.IsConfigured() {
		c.Error(apperror.New(http.StatusServiceUnavailable, "File uploads are not available", nil))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("A file is required"))
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.Error(apperror.BadRequest("File exceeds the 10 MB limit"))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer f.Close()

	result, err := h.storage.Upload(userID, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), f)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, "File uploaded", gin.H{
		"url":       result.URL,
		"public_id": result.PublicID,
	})
}

// OnboardingStatus godoc
// @Summary      Onboarding status
// @Description  Report whether the caller's profile is complete and which fields are missing
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.OnboardingStatus}
// @Failure      401  {object}  response.Response
// @Router       /onboarding/status [get]
// @Security     BearerAuth
func (h *UserHandler) OnboardingStatus(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	status, err := h.profileUC.GetOnboardingStatus(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Onboarding status", status)
}
