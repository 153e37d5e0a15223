package models

// Hackathon is an event document as stored in the hackathons collection
type Hackathon struct {
	ID          string   `json:"$id"`
	CreatedAt   string   `json:"$createdAt"`
	UpdatedAt   string   `json:"$updatedAt"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
	Location    string   `json:"location,omitempty"`
	Mode        string   `json:"mode,omitempty"`
	PrizePool   string   `json:"prize_pool,omitempty"`
	MaxTeamSize int      `json:"max_team_size,omitempty"`
	BannerURL   string   `json:"banner_url,omitempty"`
	Status      string   `json:"status,omitempty"`
}
