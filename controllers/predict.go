package controllers

import (
	"net/http"

	"neurolearn/db"
	"neurolearn/models"
	"neurolearn/services"

	"github.com/gin-gonic/gin"
)

// PredictSupport classifies the support tier for a raw feature vector.
// Classification is total: any well-formed payload gets a valid answer.
func PredictSupport(c *gin.Context) {
	var features models.LearnerFeatures
	if err := c.ShouldBindJSON(&features); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"support_level": services.ClassifySupport(features)})
}

// PredictMode classifies the preferred content modality.
func PredictMode(c *gin.Context) {
	var features models.ModeFeatures
	if err := c.ShouldBindJSON(&features); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"preferred_mode": services.ClassifyMode(features)})
}

// PredictStruggle runs the struggle detector on a raw feature vector.
func PredictStruggle(c *gin.Context) {
	var features models.StruggleFeatures
	if err := c.ShouldBindJSON(&features); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	c.JSON(http.StatusOK, services.AssessStruggle(features))
}

// StudentInsights aggregates a student's stored events into feature vectors
// and runs all three predictors on them.
func StudentInsights(c *gin.Context) {
	studentID := c.Param("studentId")
	if studentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Student id is required"})
		return
	}

	events, err := db.ListStudentEvents(studentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load learning events"})
		return
	}

	insights := models.StudentInsights{
		StudentID:     studentID,
		SupportLevel:  services.ClassifySupport(services.BuildLearnerFeatures(events)),
		PreferredMode: services.ClassifyMode(services.BuildModeFeatures(events)),
		Struggle:      services.AssessStruggle(services.BuildStruggleFeatures(events)),
		EventCount:    len(events),
	}
	c.JSON(http.StatusOK, insights)
}
