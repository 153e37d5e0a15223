package models

// UserProfile is a profile document from the users collection. Email and
// display name live in the auth directory, not here; the user service merges
// the two at read time.
type UserProfile struct {
	ID              string   `json:"$id"`
	CreatedAt       string   `json:"$createdAt"`
	UpdatedAt       string   `json:"$updatedAt"`
	Username        string   `json:"username"`
	AccountID       string   `json:"account_id,omitempty"`
	Bio             string   `json:"bio,omitempty"`
	AvatarURL       string   `json:"avatar_url,omitempty"`
	GithubURL       string   `json:"github_url,omitempty"`
	PortfolioURL    string   `json:"portfolio_url,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	TechStack       []string `json:"tech_stack,omitempty"`
	XP              int      `json:"xp"`
	ReputationScore float64  `json:"reputation_score"`
}
