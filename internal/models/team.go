package models

// Team is a team document as stored in the teams collection.
//
// Invariants maintained by the membership service: LeaderID is always present
// in Members, and Members and JoinRequests never share a user id.
type Team struct {
	ID           string   `json:"$id"`
	CreatedAt    string   `json:"$createdAt"`
	UpdatedAt    string   `json:"$updatedAt"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	HackathonID  string   `json:"hackathon_id"`
	LeaderID     string   `json:"leader_id"`
	Members      []string `json:"members"`
	JoinRequests []string `json:"join_requests"`
	LookingFor   []string `json:"looking_for,omitempty"`
	TechStack    []string `json:"tech_stack,omitempty"`
	Status       string   `json:"status,omitempty"`
	ProjectRepo  string   `json:"project_repo,omitempty"`
}

// TeamName is the id+name projection used by the batched submission
// enrichment lookup
type TeamName struct {
	ID   string `json:"$id"`
	Name string `json:"name"`
}
