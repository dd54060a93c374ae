package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zenithfest/zenith/internal/models"
)

// MaxTeamSize caps membership across all festival events.
const MaxTeamSize = 6

var (
	ErrTeamNameInvalid   = errors.New("team name invalid")
	ErrTeamNameTaken     = errors.New("team name already taken")
	ErrAlreadyInTeam     = errors.New("already in a team")
	ErrTeamNotFound      = errors.New("team not found")
	ErrTeamFull          = errors.New("team is full")
	ErrInviteCodeInvalid = errors.New("invalid invite code")
)

type TeamRepository interface {
	FindTeamByID(teamID uint) (models.Team, error)
	ExistsByName(name string) (bool, error)
	FindTeamByInviteCode(code string) (models.Team, error)
	FindMembershipByUserID(userID uint) (models.TeamMember, error)
	CountMembers(teamID uint) (int64, error)
	CreateTeamWithLeader(team *models.Team, leader *models.TeamMember) error
	AddMember(member *models.TeamMember) error
	ListRoster(teamID uint) ([]models.TeamRosterEntry, error)
}

type TeamService struct {
	teams TeamRepository
}

func NewTeamService(teams TeamRepository) *TeamService {
	return &TeamService{teams: teams}
}

func (service *TeamService) CreateTeam(leaderID uint, name string, now time.Time) (models.Team, error) {
	trimmedName := strings.TrimSpace(name)
	if trimmedName == "" {
		return models.Team{}, ErrTeamNameInvalid
	}

	if _, err := service.teams.FindMembershipByUserID(leaderID); err == nil {
		return models.Team{}, ErrAlreadyInTeam
	}

	taken, err := service.teams.ExistsByName(trimmedName)
	if err != nil {
		return models.Team{}, err
	}
	if taken {
		return models.Team{}, ErrTeamNameTaken
	}

	team := models.Team{
		Name:       trimmedName,
		InviteCode: uuid.NewString(),
		LeaderID:   leaderID,
		CreatedAt:  now,
	}
	leader := models.TeamMember{
		UserID:   leaderID,
		Role:     models.TeamRoleLeader,
		JoinedAt: now,
	}
	if err := service.teams.CreateTeamWithLeader(&team, &leader); err != nil {
		return models.Team{}, err
	}
	return team, nil
}

func (service *TeamService) JoinTeam(userID uint, inviteCode string, now time.Time) (models.Team, error) {
	if _, err := service.teams.FindMembershipByUserID(userID); err == nil {
		return models.Team{}, ErrAlreadyInTeam
	}

	team, err := service.teams.FindTeamByInviteCode(strings.TrimSpace(inviteCode))
	if err != nil {
		return models.Team{}, ErrInviteCodeInvalid
	}

	count, err := service.teams.CountMembers(team.ID)
	if err != nil {
		return models.Team{}, err
	}
	if count >= MaxTeamSize {
		return models.Team{}, ErrTeamFull
	}

	member := models.TeamMember{
		TeamID:   team.ID,
		UserID:   userID,
		Role:     models.TeamRoleMember,
		JoinedAt: now,
	}
	if err := service.teams.AddMember(&member); err != nil {
		return models.Team{}, err
	}
	return team, nil
}

func (service *TeamService) TeamForUser(userID uint) (models.Team, []models.TeamRosterEntry, error) {
	membership, err := service.teams.FindMembershipByUserID(userID)
	if err != nil {
		return models.Team{}, nil, ErrTeamNotFound
	}

	team, err := service.teams.FindTeamByID(membership.TeamID)
	if err != nil {
		return models.Team{}, nil, ErrTeamNotFound
	}

	roster, err := service.teams.ListRoster(team.ID)
	if err != nil {
		return models.Team{}, nil, err
	}
	return team, roster, nil
}
