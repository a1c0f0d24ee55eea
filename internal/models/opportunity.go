// internal/models/opportunity.go
package models

import "time"

type Opportunity struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Career    string    `json:"career"`
	Industry  string    `json:"industry"`
	AreaType  string    `json:"areaType"`
	Language  string    `json:"language,omitempty"`
	Seniority string    `json:"seniority"`
	Location  string    `json:"location,omitempty"`
	PostedAt  time.Time `json:"postedAt"`
}

// Feedback is one historical rating a user left on an opportunity.
// Rating is normalized to [0,1].
type Feedback struct {
	UserID        string    `json:"userId"`
	OpportunityID string    `json:"opportunityId"`
	Rating        float64   `json:"rating"`
	CreatedAt     time.Time `json:"createdAt"`
}
