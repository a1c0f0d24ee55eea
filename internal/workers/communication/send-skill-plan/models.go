// internal/workers/communication/send-skill-plan/models.go

package sendskillplan

import "career-workers/internal/models"

type Input struct {
	UserID         string                 `json:"userId"`
	TargetCareer   string                 `json:"targetCareer,omitempty"`
	RequestID      string                 `json:"requestId,omitempty"`
	PrioritySkills []models.SkillPriority `json:"prioritySkills,omitempty"`
}

type Output struct {
	NotificationID string `json:"notificationId"`
	Status         string `json:"status"`
	EmailSent      bool   `json:"emailSent"`
	SMSSent        bool   `json:"smsSent"`
	SkillCount     int    `json:"skillCount"`
	SentAt         string `json:"sentAt"` // ISO 8601
}

const (
	StatusSent     = "sent"
	StatusPartial  = "partial"
	StatusDisabled = "disabled"
)
