package service

import (
	"context"

	apperrors "hackconnect-backend/internal/errors"
	"hackconnect-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// JudgingService handles judging score submissions
type JudgingService struct {
	scoreRepo repository.ScoreRepositoryInterface
	validator *validator.Validate
}

// NewJudgingService creates a new judging service
func NewJudgingService(scoreRepo repository.ScoreRepositoryInterface, validator *validator.Validate) *JudgingService {
	return &JudgingService{scoreRepo: scoreRepo, validator: validator}
}

// SubmitScoreRequest represents a judge's score for one submission
type SubmitScoreRequest struct {
	SubmissionID string `json:"submission_id" validate:"required"`
	JudgeID      string `json:"judge_id" validate:"required"`
	Technical    int    `json:"technical_score"`
	Design       int    `json:"design_score"`
	Utility      int    `json:"utility_score"`
	Comment      string `json:"comment,omitempty"`
}

// ScoreResponse represents a stored score with its derived total
type ScoreResponse struct {
	ID           string `json:"id"`
	SubmissionID string `json:"submission_id"`
	JudgeID      string `json:"judge_id"`
	Technical    int    `json:"technical"`
	Design       int    `json:"design"`
	Utility      int    `json:"utility"`
	Total        int    `json:"total"`
	Comment      string `json:"comment,omitempty"`
}

// SubmitScore stores a score record with the server-computed total. A judge
// resubmitting creates a new independent record.
func (s *JudgingService) SubmitScore(ctx context.Context, req *SubmitScoreRequest) (*ScoreResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	total := req.Technical + req.Design + req.Utility

	score, err := s.scoreRepo.Create(ctx, map[string]interface{}{
		"submission_id": req.SubmissionID,
		"judge_id":      req.JudgeID,
		"technical":     req.Technical,
		"design":        req.Design,
		"utility":       req.Utility,
		"total":         total,
		"comment":       req.Comment,
	})
	if err != nil {
		return nil, err
	}

	return &ScoreResponse{
		ID:           score.ID,
		SubmissionID: score.SubmissionID,
		JudgeID:      score.JudgeID,
		Technical:    score.Technical,
		Design:       score.Design,
		Utility:      score.Utility,
		Total:        score.Total,
		Comment:      score.Comment,
	}, nil
}
