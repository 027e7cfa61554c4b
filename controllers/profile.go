package controllers

import (
	"net/http"

	"neurolearn/db"
	"neurolearn/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validNeuroTypes = map[models.NeuroType]bool{
	models.NeuroGeneral:  true,
	models.NeuroDyslexic: true,
	models.NeuroADHD:     true,
	models.NeuroASD:      true,
}

var validSupportLevels = map[models.SupportLevel]bool{
	models.LowSupport:    true,
	models.MediumSupport: true,
	models.HighSupport:   true,
}

// GetProfile returns the authenticated student's profile, or defaults when
// none has been saved yet.
func GetProfile(c *gin.Context) {
	userID := c.GetString("userId")

	profile, err := db.GetProfile(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}
	if profile == nil {
		profile = &models.StudentProfile{
			UserID:       userID,
			NeuroType:    models.NeuroGeneral,
			SupportLevel: models.MediumSupport,
		}
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile creates or replaces the authenticated student's profile.
func UpdateProfile(c *gin.Context) {
	var profile models.StudentProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if profile.NeuroType == "" {
		profile.NeuroType = models.NeuroGeneral
	}
	if profile.SupportLevel == "" {
		profile.SupportLevel = models.MediumSupport
	}
	if !validNeuroTypes[profile.NeuroType] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown neuro type"})
		return
	}
	if !validSupportLevels[profile.SupportLevel] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown support level"})
		return
	}

	profile.UserID = c.GetString("userId")
	profile.ID = primitive.NilObjectID

	if err := db.UpsertProfile(profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}
