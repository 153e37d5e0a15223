package service

import (
	"context"
	"sync"

	"hackconnect-backend/internal/appwrite"
	apperrors "hackconnect-backend/internal/errors"
	"hackconnect-backend/internal/logger"
	"hackconnect-backend/internal/models"
	"hackconnect-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// unknownUserName labels member ids the directory snapshot could not resolve
const unknownUserName = "Unknown User"

// directoryPageSize bounds the directory snapshot fetched for enrichment
const directoryPageSize = 100

// TeamService handles the team membership and join-request lifecycle
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	directory repository.DirectoryInterface
	validator *validator.Validate

	// locks serializes read-modify-write mutations per team id. The store has
	// no conditional writes, so two concurrent mutations on one team would
	// otherwise race and lose an update.
	locks sync.Map
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, directory repository.DirectoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:      repo,
		directory: directory,
		validator: validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=100"`
	Description string   `json:"description,omitempty"`
	HackathonID string   `json:"hackathon_id" validate:"required"`
	LeaderID    string   `json:"leader_id" validate:"required"`
	Members     []string `json:"members,omitempty"`
	LookingFor  []string `json:"looking_for,omitempty"`
	TechStack   []string `json:"tech_stack,omitempty"`
	Status      string   `json:"status,omitempty"`
	ProjectRepo string   `json:"project_repo,omitempty"`
}

// TeamActionRequest identifies a team and the acting user
type TeamActionRequest struct {
	TeamID string `json:"team_id" validate:"required"`
	UserID string `json:"user_id" validate:"required"`
}

// TeamRequestActionRequest identifies a pending join request and the leader
// acting on it
type TeamRequestActionRequest struct {
	TeamID       string `json:"team_id" validate:"required"`
	LeaderID     string `json:"leader_id" validate:"required"`
	TargetUserID string `json:"target_user_id" validate:"required"`
}

// MemberInfo is a member or join-request entry resolved against the directory
type MemberInfo struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID                   string       `json:"id"`
	Name                 string       `json:"name"`
	Description          string       `json:"description,omitempty"`
	HackathonID          string       `json:"hackathon_id"`
	LeaderID             string       `json:"leader_id"`
	Members              []string     `json:"members"`
	JoinRequests         []string     `json:"join_requests"`
	LookingFor           []string     `json:"looking_for,omitempty"`
	TechStack            []string     `json:"tech_stack,omitempty"`
	Status               string       `json:"status,omitempty"`
	ProjectRepo          string       `json:"project_repo,omitempty"`
	CreatedAt            string       `json:"created_at"`
	UpdatedAt            string       `json:"updated_at"`
	MembersEnriched      []MemberInfo `json:"members_enriched"`
	JoinRequestsEnriched []MemberInfo `json:"join_requests_enriched"`
}

// lockTeam acquires the per-team mutex and returns its release func.
// Mutexes are kept for the life of the process; team ids are low-cardinality.
func (s *TeamService) lockTeam(teamID string) func() {
	v, _ := s.locks.LoadOrStore(teamID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// Create creates a new team. The leader is always inserted into the member
// list regardless of whether the caller included it, and duplicate member
// ids are dropped.
func (s *TeamService) Create(ctx context.Context, req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	members := make([]string, 0, len(req.Members)+1)
	for _, id := range req.Members {
		if !contains(members, id) {
			members = append(members, id)
		}
	}
	if !contains(members, req.LeaderID) {
		members = append(members, req.LeaderID)
	}

	data := map[string]interface{}{
		"name":          req.Name,
		"hackathon_id":  req.HackathonID,
		"leader_id":     req.LeaderID,
		"members":       members,
		"join_requests": []string{},
	}
	if req.Description != "" {
		data["description"] = req.Description
	}
	if len(req.LookingFor) > 0 {
		data["looking_for"] = req.LookingFor
	}
	if len(req.TechStack) > 0 {
		data["tech_stack"] = req.TechStack
	}
	if req.Status != "" {
		data["status"] = req.Status
	}
	if req.ProjectRepo != "" {
		data["project_repo"] = req.ProjectRepo
	}

	team, err := s.repo.Create(ctx, data)
	if err != nil {
		return nil, err
	}
	return toTeamResponse(team), nil
}

// Join records a join request for the acting user. Members cannot request to
// join again and a pending request is never duplicated.
func (s *TeamService) Join(ctx context.Context, req *TeamActionRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return &apperrors.ValidationError{Message: err.Error()}
	}

	unlock := s.lockTeam(req.TeamID)
	defer unlock()

	team, err := s.repo.GetByID(ctx, req.TeamID)
	if err != nil {
		return err
	}

	if contains(team.Members, req.UserID) {
		return apperrors.ErrAlreadyMember
	}
	if contains(team.JoinRequests, req.UserID) {
		return apperrors.ErrRequestPending
	}

	requests := append(append([]string{}, team.JoinRequests...), req.UserID)
	_, err = s.repo.UpdateMembership(ctx, team.ID, map[string]interface{}{
		"join_requests": requests,
	})
	return err
}

// Approve moves a pending join request into the member list. Only the stored
// leader may approve; both fields are persisted in the same write.
func (s *TeamService) Approve(ctx context.Context, req *TeamRequestActionRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return &apperrors.ValidationError{Message: err.Error()}
	}

	unlock := s.lockTeam(req.TeamID)
	defer unlock()

	team, err := s.repo.GetByID(ctx, req.TeamID)
	if err != nil {
		return err
	}

	if team.LeaderID != req.LeaderID {
		return apperrors.ErrNotLeaderApprove
	}
	if !contains(team.JoinRequests, req.TargetUserID) {
		return apperrors.ErrRequestNotFound
	}

	requests := remove(team.JoinRequests, req.TargetUserID)
	members := append(append([]string{}, team.Members...), req.TargetUserID)

	_, err = s.repo.UpdateMembership(ctx, team.ID, map[string]interface{}{
		"join_requests": requests,
		"members":       members,
	})
	return err
}

// Reject drops a pending join request. Only the stored leader may reject.
func (s *TeamService) Reject(ctx context.Context, req *TeamRequestActionRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return &apperrors.ValidationError{Message: err.Error()}
	}

	unlock := s.lockTeam(req.TeamID)
	defer unlock()

	team, err := s.repo.GetByID(ctx, req.TeamID)
	if err != nil {
		return err
	}

	if team.LeaderID != req.LeaderID {
		return apperrors.ErrNotLeaderReject
	}
	if !contains(team.JoinRequests, req.TargetUserID) {
		return apperrors.ErrRequestNotFound
	}

	requests := remove(team.JoinRequests, req.TargetUserID)
	_, err = s.repo.UpdateMembership(ctx, team.ID, map[string]interface{}{
		"join_requests": requests,
	})
	return err
}

// Leave removes the acting user from the member list. A leaving leader
// disbands the team outright; there is no leadership transfer. The returned
// bool reports whether the team was disbanded.
func (s *TeamService) Leave(ctx context.Context, req *TeamActionRequest) (bool, error) {
	if err := s.validator.Struct(req); err != nil {
		return false, &apperrors.ValidationError{Message: err.Error()}
	}

	unlock := s.lockTeam(req.TeamID)
	defer unlock()

	team, err := s.repo.GetByID(ctx, req.TeamID)
	if err != nil {
		return false, err
	}

	if !contains(team.Members, req.UserID) {
		return false, apperrors.ErrNotMember
	}

	if req.UserID == team.LeaderID {
		if err := s.repo.Delete(ctx, team.ID); err != nil {
			return false, err
		}
		return true, nil
	}

	members := remove(team.Members, req.UserID)
	_, err = s.repo.UpdateMembership(ctx, team.ID, map[string]interface{}{
		"members": members,
	})
	return false, err
}

// Delete removes the team unconditionally. Only the stored leader may delete.
func (s *TeamService) Delete(ctx context.Context, req *TeamActionRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return &apperrors.ValidationError{Message: err.Error()}
	}

	unlock := s.lockTeam(req.TeamID)
	defer unlock()

	team, err := s.repo.GetByID(ctx, req.TeamID)
	if err != nil {
		return err
	}

	if team.LeaderID != req.UserID {
		return apperrors.ErrNotLeaderDelete
	}

	return s.repo.Delete(ctx, team.ID)
}

// ListEnriched returns all teams with member and join-request ids resolved to
// display names. Teams and the directory snapshot are fetched concurrently;
// a directory failure degrades every entry to the unknown-user label instead
// of failing the call.
func (s *TeamService) ListEnriched(ctx context.Context) ([]TeamResponse, error) {
	var (
		wg       sync.WaitGroup
		teams    []models.Team
		teamsErr error
		users    []appwrite.User
		usersErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		teams, _, teamsErr = s.repo.GetAll(ctx)
	}()
	go func() {
		defer wg.Done()
		users, usersErr = s.directory.List(ctx, directoryPageSize)
	}()
	wg.Wait()

	if teamsErr != nil {
		return nil, teamsErr
	}
	if usersErr != nil {
		logger.WithContext(ctx).WithError(usersErr).Warn("directory snapshot failed, enriching with unknown users")
		users = nil
	}

	nameByID := make(map[string]string, len(users))
	for _, u := range users {
		nameByID[u.ID] = u.Name
	}

	responses := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		resp := toTeamResponse(&teams[i])
		resp.MembersEnriched = enrich(teams[i].Members, nameByID)
		resp.JoinRequestsEnriched = enrich(teams[i].JoinRequests, nameByID)
		responses = append(responses, *resp)
	}
	return responses, nil
}

// ListByHackathon returns the teams registered for one hackathon
func (s *TeamService) ListByHackathon(ctx context.Context, hackathonID string) ([]TeamResponse, int64, error) {
	teams, total, err := s.repo.GetByHackathonID(ctx, hackathonID)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		responses = append(responses, *toTeamResponse(&teams[i]))
	}
	return responses, total, nil
}

func toTeamResponse(team *models.Team) *TeamResponse {
	members := team.Members
	if members == nil {
		members = []string{}
	}
	requests := team.JoinRequests
	if requests == nil {
		requests = []string{}
	}

	return &TeamResponse{
		ID:                   team.ID,
		Name:                 team.Name,
		Description:          team.Description,
		HackathonID:          team.HackathonID,
		LeaderID:             team.LeaderID,
		Members:              members,
		JoinRequests:         requests,
		LookingFor:           team.LookingFor,
		TechStack:            team.TechStack,
		Status:               team.Status,
		ProjectRepo:          team.ProjectRepo,
		CreatedAt:            team.CreatedAt,
		UpdatedAt:            team.UpdatedAt,
		MembersEnriched:      []MemberInfo{},
		JoinRequestsEnriched: []MemberInfo{},
	}
}

func enrich(userIDs []string, nameByID map[string]string) []MemberInfo {
	infos := make([]MemberInfo, 0, len(userIDs))
	for _, id := range userIDs {
		name, ok := nameByID[id]
		if !ok {
			name = unknownUserName
		}
		infos = append(infos, MemberInfo{UserID: id, Name: name})
	}
	return infos
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

func remove(list []string, value string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}
