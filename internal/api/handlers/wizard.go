package handlers

import (
	"log"
	"net/http"

	"marketplace-bff/internal/services"
	"marketplace-bff/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const maxUploadBytes = 10 << 20

// WizardHandler serves the job posting wizard.
type WizardHandler struct {
	service   services.WizardService
	validator *validator.Validate
}

// NewWizardHandler creates a new WizardHandler.
func NewWizardHandler(service services.WizardService, validate *validator.Validate) *WizardHandler {
	return &WizardHandler{service: service, validator: validate}
}

// Start godoc
// @Summary      Start the job posting wizard
// @Description  Starts an empty form, or resumes one of the caller's drafts when jobId is given.
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Param        request body      dto.StartWizardRequest false "Draft to resume"
// @Success      200 {object}  dto.WizardResponse
// @Failure      403 {object}  map[string]string "Not a client, or not the draft owner"
// @Failure      409 {object}  map[string]string "Job is no longer a draft"
// @Router       /wizard [post]
// @Security     BearerAuth
func (h *WizardHandler) Start(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	var req dto.StartWizardRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, h.validator, &req) {
		return
	}
	resp, err := h.service.Start(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "Failed to start job posting")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary      Get the wizard state
// @Tags         wizard
// @Produce      json
// @Success      200 {object}  dto.WizardResponse
// @Failure      404 {object}  map[string]string "No wizard in progress"
// @Router       /wizard [get]
// @Security     BearerAuth
func (h *WizardHandler) Get(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	resp, err := h.service.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to load job posting")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateForm godoc
// @Summary      Replace the form
// @Description  Stores the form being edited without validating or saving it upstream.
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Param        request body      dto.UpdateWizardFormRequest true "Form"
// @Success      200 {object}  dto.WizardResponse
// @Router       /wizard/form [put]
// @Security     BearerAuth
func (h *WizardHandler) UpdateForm(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	var req dto.UpdateWizardFormRequest
	if !bindJSON(c, nil, &req) {
		return
	}
	resp, err := h.service.UpdateForm(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "Failed to update job posting")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Next godoc
// @Summary      Go to the next step
// @Description  Validates the current step and saves a draft once past the first step. Field errors come back in the wizard state.
// @Tags         wizard
// @Produce      json
// @Success      200 {object}  dto.WizardResponse
// @Failure      409 {object}  map[string]string "Already on the last step, or a request is in flight"
// @Failure      422 {object}  map[string]interface{} "Current step is invalid"
// @Failure      502 {object}  map[string]string "Marketplace API error"
// @Router       /wizard/next [post]
// @Security     BearerAuth
func (h *WizardHandler) Next(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	resp, err := h.service.Next(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to save job posting")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Back godoc
// @Summary      Go to the previous step
// @Tags         wizard
// @Produce      json
// @Success      200 {object}  dto.WizardResponse
// @Router       /wizard/back [post]
// @Security     BearerAuth
func (h *WizardHandler) Back(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	resp, err := h.service.Back(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to update job posting")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Submit godoc
// @Summary      Publish the job
// @Description  Only allowed from the preview step. Validates every step, then publishes the job.
// @Tags         wizard
// @Produce      json
// @Success      201 {object}  dto.SubmitWizardResponse
// @Failure      409 {object}  map[string]string "Not on the preview step, or a request is in flight"
// @Failure      422 {object}  map[string]interface{} "Form is invalid"
// @Failure      502 {object}  map[string]string "Marketplace API error"
// @Router       /wizard/submit [post]
// @Security     BearerAuth
func (h *WizardHandler) Submit(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	resp, err := h.service.Submit(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to post job")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UploadImage godoc
// @Summary      Upload a job image
// @Description  The image is downscaled and stored, and its URL is appended to the form.
// @Tags         wizard
// @Accept       multipart/form-data
// @Produce      json
// @Param        image formData  file true "Image file"
// @Success      200 {object}  dto.WizardResponse
// @Failure      400 {object}  map[string]string "Missing or unreadable image"
// @Failure      422 {object}  map[string]interface{} "Too many images"
// @Router       /wizard/images [post]
// @Security     BearerAuth
func (h *WizardHandler) UploadImage(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)
	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required: " + err.Error()})
		return
	}
	f, err := fh.Open()
	if err != nil {
		log.Printf("Error opening uploaded file %s: %v", fh.Filename, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read image"})
		return
	}
	defer f.Close()

	resp, err := h.service.UploadImage(c.Request.Context(), userID, f)
	if err != nil {
		respondError(c, err, "Failed to upload image")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Validate godoc
// @Summary      Validate a job form
// @Description  Runs the step validators without touching wizard state.
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Param        request body      dto.ValidateJobRequest true "Form and step"
// @Success      200 {object}  map[string]interface{} "messages and fields; both empty when valid"
// @Router       /wizard/validate [post]
// @Security     BearerAuth
func (h *WizardHandler) Validate(c *gin.Context) {
	var req dto.ValidateJobRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	msgs, fields := h.service.Validate(&req)
	if msgs == nil {
		msgs = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"valid": len(msgs) == 0, "messages": msgs, "fields": fields})
}
