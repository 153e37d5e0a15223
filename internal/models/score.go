package models

// Score is a judging score document. Total is computed server-side as the sum
// of the three sub-scores; a judge resubmitting creates a new record.
type Score struct {
	ID           string `json:"$id"`
	CreatedAt    string `json:"$createdAt"`
	UpdatedAt    string `json:"$updatedAt"`
	SubmissionID string `json:"submission_id"`
	JudgeID      string `json:"judge_id"`
	Technical    int    `json:"technical"`
	Design       int    `json:"design"`
	Utility      int    `json:"utility"`
	Total        int    `json:"total"`
	Comment      string `json:"comment,omitempty"`
}
