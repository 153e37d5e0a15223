package models

// Announcement is an organizer broadcast document
type Announcement struct {
	ID          string `json:"$id"`
	CreatedAt   string `json:"$createdAt"`
	UpdatedAt   string `json:"$updatedAt"`
	HackathonID string `json:"hackathon_id"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	Type        string `json:"type"`
	Timestamp   string `json:"timestamp"`
}
