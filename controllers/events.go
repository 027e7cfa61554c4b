package controllers

import (
	"net/http"
	"time"

	"neurolearn/db"
	"neurolearn/models"
	"neurolearn/services"
	"neurolearn/websocket"

	"github.com/gin-gonic/gin"
)

var monitor *websocket.Monitor

// InitEventController injects the live monitor hub.
func InitEventController(m *websocket.Monitor) {
	monitor = m
}

var validEventTypes = map[string]bool{
	models.EventQuizAttempt: true,
	models.EventLessonView:  true,
	models.EventHintRequest: true,
	models.EventModeSwitch:  true,
	models.EventEarlyExit:   true,
}

// CreateEvent ingests one learning telemetry event for the authenticated
// student, then pushes a fresh struggle assessment to any live watchers.
func CreateEvent(c *gin.Context) {
	var event models.LearningEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	if !validEventTypes[event.EventType] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown event type"})
		return
	}

	event.StudentID = c.GetString("userId")
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	if err := db.SaveLearningEvent(event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save event"})
		return
	}

	if monitor != nil && monitor.WatcherCount(event.StudentID) > 0 {
		if events, err := db.ListStudentEvents(event.StudentID); err == nil {
			assessment := services.AssessStruggle(services.BuildStruggleFeatures(events))
			monitor.Broadcast(event.StudentID, gin.H{
				"studentId":  event.StudentID,
				"assessment": assessment,
			})
		}
	}

	c.JSON(http.StatusCreated, gin.H{"saved": true})
}
