package controllers

import (
	"net/http"
	"time"

	"neurolearn/db"
	"neurolearn/models"
	"neurolearn/services"
	"neurolearn/utils"

	"github.com/gin-gonic/gin"
)

var generationService *services.GenerationService

// InitGenerationController injects the generation orchestrator.
func InitGenerationController(svc *services.GenerationService) {
	generationService = svc
}

type imageRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// GenerateContent produces a neuro-adapted lesson. The response is always a
// fully-populated payload; collaborator failures surface as the deterministic
// fallback, not as an error status.
func GenerateContent(c *gin.Context) {
	var req models.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if err := utils.ValidateTopic(req.Topic); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.Topic = utils.SanitizeTopic(req.Topic)

	// The student's profile supplies defaults for anything the request
	// leaves out.
	userID := c.GetString("userId")
	if req.NeuroType == "" || req.SupportLevel == "" {
		if profile, err := db.GetProfile(userID); err == nil && profile != nil {
			if req.NeuroType == "" {
				req.NeuroType = profile.NeuroType
			}
			if req.SupportLevel == "" {
				req.SupportLevel = profile.SupportLevel
			}
			if len(req.Interests) == 0 {
				req.Interests = profile.Interests
			}
		}
	}
	if req.NeuroType == "" {
		req.NeuroType = models.NeuroGeneral
	}
	if req.SupportLevel == "" {
		req.SupportLevel = models.MediumSupport
	}

	resp := generationService.GenerateContent(c.Request.Context(), req)

	if !services.IsFallback(resp) {
		// Archive for review dashboards. Best effort; the lesson is
		// returned either way.
		db.SaveGeneratedContent(models.GeneratedContent{
			StudentID:     userID,
			Topic:         req.Topic,
			NeuroType:     req.NeuroType,
			SupportLevel:  req.SupportLevel,
			LessonContent: resp.LessonContent,
			Summary:       resp.Summary,
			Questions:     resp.Questions,
			VisualPrompt:  resp.VisualPrompt,
			AudioPrompt:   resp.AudioPrompt,
			CreatedAt:     time.Now(),
		})
	}

	c.JSON(http.StatusOK, resp)
}

// GenerateImage renders a visual for the prompt. An empty URL from the
// adapter is reported as an explicit upstream failure.
func GenerateImage(c *gin.Context) {
	var req imageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	url := generationService.GenerateImage(c.Request.Context(), req.Prompt)
	if url == "" {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Image generation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"image_url": url})
}
