package v1

import (
	"net/http"
	"strconv"
	"strings"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// Browsing and searching jobs requires no account
	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("", handler.Search)
		publicJobs.GET("/:id", handler.GetDetails)
	}

	protectedJobs := protected.Group("/jobs")
	{
		protectedJobs.POST("", handler.Create)
		protectedJobs.PUT("/:id", handler.Update)
		protectedJobs.DELETE("/:id", handler.Delete)
	}

	employers := protected.Group("/employers")
	{
		employers.GET("/jobs", handler.ListByEmployer)
	}
}

type CreateJobRequest struct {
	Title            string     `json:"title" binding:"required"`
	Description      string     `json:"description"`
	Qualifications   StringList `json:"qualifications"`
	Responsibilities StringList `json:"responsibilities"`
	Location         string     `json:"location"`
	SalaryRange      string     `json:"salary_range"`
	JobType          string     `json:"job_type" binding:"required"`
}

// UpdateJobRequest carries a partial update: absent fields stay untouched.
type UpdateJobRequest struct {
	Title            *string    `json:"title"`
	Description      *string    `json:"description"`
	Qualifications   StringList `json:"qualifications"`
	Responsibilities StringList `json:"responsibilities"`
	Location         *string    `json:"location"`
	SalaryRange      *string    `json:"salary_range"`
	JobType          *string    `json:"job_type"`
}

// Search godoc
// @Summary      Search jobs
// @Description  List jobs filtered by keyword, location, and job types, newest first
// @Tags         jobs
// @Produce      json
// @Param        keyword   query     string  false  "Substring match over title and description"
// @Param        location  query     string  false  "Substring match over location"
// @Param        job_type  query     string  false  "Comma-separated job types"
// @Success      200  {object}  response.Response{data=[]domain.JobWithEmployer}
// @Router       /jobs [get]
func (h *JobHandler) Search(c *gin.Context) {
	filter := domain.JobFilter{
		Keyword:  c.Query("keyword"),
		Location: c.Query("location"),
	}
	if raw := c.Query("job_type"); raw != "" {
		filter.JobTypes = strings.Split(raw, ",")
	}

	jobs, err := h.jobUC.SearchJobs(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job list", jobs)
}

// GetDetails godoc
// @Summary      Get job details
// @Description  Get one job posting with its employer's display info
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response{data=domain.JobWithEmployer}
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	job, err := h.jobUC.GetJobDetails(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}

// Create godoc
// @Summary      Create a job
// @Description  Post a new job (employer with a completed company profile only)
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response{data=domain.Job}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job := &domain.Job{
		Title:            req.Title,
		Description:      req.Description,
		Qualifications:   req.Qualifications,
		Responsibilities: req.Responsibilities,
		Location:         req.Location,
		SalaryRange:      req.SalaryRange,
		JobType:          req.JobType,
	}

	if err := h.jobUC.CreateJob(c.Request.Context(), userID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

// Update godoc
// @Summary      Update a job
// @Description  Partially update a job posting (owner only)
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      int               true  "Job ID"
// @Param        job  body      UpdateJobRequest  true  "Fields to change"
// @Success      200  {object}  response.Response{data=domain.Job}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	update := domain.JobUpdate{
		Title:            req.Title,
		Description:      req.Description,
		Qualifications:   req.Qualifications,
		Responsibilities: req.Responsibilities,
		Location:         req.Location,
		SalaryRange:      req.SalaryRange,
		JobType:          req.JobType,
	}

	job, err := h.jobUC.UpdateJob(c.Request.Context(), userID, id, update)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated successfully", job)
}

// Delete godoc
// @Summary      Delete a job
// @Description  Permanently delete a job posting (owner only). Existing applications are kept.
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	if err := h.jobUC.DeleteJob(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted successfully", nil)
}

// ListByEmployer godoc
// @Summary      List my job postings
// @Description  List all jobs posted by the authenticated employer
// @Tags         employers
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Job}
// @Failure      403  {object}  response.Response
// @Router       /employers/jobs [get]
// @Security     BearerAuth
func (h *JobHandler) ListByEmployer(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Only employers can access their job list"))
		return
	}

	jobs, err := h.jobUC.ListJobsByEmployer(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employer job list", jobs)
}
