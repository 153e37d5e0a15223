package models

// Submission is a project submission document. TeamName is not persisted; the
// listing service resolves it from the teams collection at read time.
type Submission struct {
	ID           string   `json:"$id"`
	CreatedAt    string   `json:"$createdAt"`
	UpdatedAt    string   `json:"$updatedAt"`
	HackathonID  string   `json:"hackathon_id"`
	TeamID       string   `json:"team_id"`
	ProjectTitle string   `json:"project_title"`
	Description  string   `json:"description,omitempty"`
	RepoLinks    []string `json:"repo_links,omitempty"`
	DemoVideoURL string   `json:"demo_video_url,omitempty"`
	TeamName     string   `json:"team_name,omitempty"`
}
