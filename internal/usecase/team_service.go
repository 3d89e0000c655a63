package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/wordle-teams/internal/domain/player"
	"github.com/riskibarqy/wordle-teams/internal/domain/scoring"
	"github.com/riskibarqy/wordle-teams/internal/domain/team"
	"github.com/riskibarqy/wordle-teams/internal/domain/user"
	idgen "github.com/riskibarqy/wordle-teams/internal/platform/id"
	"github.com/riskibarqy/wordle-teams/internal/platform/logging"
)

type TeamService struct {
	teamRepo    team.Repository
	playerRepo  player.Repository
	idGenerator idgen.Generator
	invalidator BoardInvalidator
	logger      *logging.Logger
}

func NewTeamService(
	teamRepo team.Repository,
	playerRepo player.Repository,
	idGenerator idgen.Generator,
	invalidator BoardInvalidator,
	logger *logging.Logger,
) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}

	return &TeamService{
		teamRepo:    teamRepo,
		playerRepo:  playerRepo,
		idGenerator: idGenerator,
		invalidator: invalidator,
		logger:      logger,
	}
}

type CreateTeamInput struct {
	Name          string
	PlayWeekends  bool
	ScoringSystem string
}

// Create registers a new team owned by the caller. The creator is always
// the first member, which keeps the creator-must-be-member invariant
// satisfied from the start.
func (s *TeamService) Create(ctx context.Context, principal user.Principal, input CreateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Create")
	defer span.End()

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return team.Team{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}
	if principal.UserID == "" {
		return team.Team{}, fmt.Errorf("%w: missing principal", ErrUnauthorized)
	}

	system, err := scoring.ParseSystem(input.ScoringSystem)
	if err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	teamID, err := s.idGenerator.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	if err := s.ensurePlayerRecord(ctx, principal); err != nil {
		return team.Team{}, err
	}

	item := team.Team{
		ID:            teamID,
		Name:          name,
		PlayWeekends:  input.PlayWeekends,
		ScoringSystem: system,
		CreatorID:     principal.UserID,
		PlayerIDs:     []string{principal.UserID},
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.teamRepo.Create(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	s.logger.InfoContext(ctx, "team created",
		"team_id", item.ID,
		"creator_id", item.CreatorID,
		"play_weekends", item.PlayWeekends,
		"scoring_system", string(item.ScoringSystem),
	)

	return item, nil
}

func (s *TeamService) GetByID(ctx context.Context, teamID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetByID")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return item, nil
}

func (s *TeamService) ListMine(ctx context.Context, principal user.Principal) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListMine")
	defer span.End()

	if principal.UserID == "" {
		return nil, fmt.Errorf("%w: missing principal", ErrUnauthorized)
	}

	items, err := s.teamRepo.ListByPlayer(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("list teams by player: %w", err)
	}

	return items, nil
}

// AddPlayer grows a team's membership. Only existing members may invite,
// and the invitee must already have a player record.
func (s *TeamService) AddPlayer(ctx context.Context, principal user.Principal, teamID, playerID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.AddPlayer")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	playerID = strings.TrimSpace(playerID)
	if teamID == "" || playerID == "" {
		return team.Team{}, fmt.Errorf("%w: team id and player id are required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}
	if !item.HasPlayer(principal.UserID) {
		return team.Team{}, fmt.Errorf("%w: only members can add players", ErrUnauthorized)
	}
	if item.HasPlayer(playerID) {
		return item, nil
	}

	_, playerExists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get player: %w", err)
	}
	if !playerExists {
		return team.Team{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	if err := s.teamRepo.AddPlayer(ctx, teamID, playerID); err != nil {
		return team.Team{}, fmt.Errorf("add player to team: %w", err)
	}
	item.PlayerIDs = append(item.PlayerIDs, playerID)

	if s.invalidator != nil {
		s.invalidator.InvalidateTeam(ctx, teamID)
	}

	return item, nil
}

func (s *TeamService) ensurePlayerRecord(ctx context.Context, principal user.Principal) error {
	_, exists, err := s.playerRepo.GetByID(ctx, principal.UserID)
	if err != nil {
		return fmt.Errorf("get player: %w", err)
	}
	if exists {
		return nil
	}

	fullName := strings.TrimSpace(principal.FirstName + " " + principal.LastName)
	if fullName == "" {
		fullName = principal.Email
	}

	item := player.Player{
		ID:       principal.UserID,
		FullName: fullName,
		Email:    principal.Email,
	}
	if err := s.playerRepo.Upsert(ctx, item); err != nil {
		return fmt.Errorf("upsert player: %w", err)
	}

	return nil
}
