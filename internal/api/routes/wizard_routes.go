package routes

import (
	"marketplace-bff/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

                                                // RegisterWizardRoutes registers the job posting wizard. All routes need authentication.
func RegisterWizardRoutes(
	rg *gin.RouterGroup,
	wizardHandler handlers.WizardHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	wizard := rg.Group("/wizard")
	wizard.Use(authMiddleware)
	{
		wizard.POST("", wizardHandler.Start)          // Start, or resume a draft
		wizard.GET("", wizardHandler.Get)             // Current step and form
		wizard.PUT("/form", wizardHandler.UpdateForm) // Save edits without validating
		wizard.POST("/next", wizardHandler.Next)      // Validate step, save draft, advance
		wizard.POST("/back", wizardHandler.Back)      // Previous step
		wizard.POST("/submit", wizardHandler.Submit)  // Publish from the preview step
		wizard.POST("/images", wizardHandler.UploadImage)
		wizard.POST("/validate", wizardHandler.Validate)
	}
}
