package db

import (
	"github.com/zenithfest/zenith/internal/models"
	"gorm.io/gorm"
)

type TeamRepository struct {
	database *gorm.DB
}

func NewTeamRepository(database *gorm.DB) *TeamRepository {
	return &TeamRepository{database: database}
}

func (repo *TeamRepository) FindTeamByID(teamID uint) (models.Team, error) {
	var team models.Team
	if err := repo.database.First(&team, teamID).Error; err != nil {
		return models.Team{}, err
	}
	return team, nil
}

func (repo *TeamRepository) ExistsByName(name string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Team{}).
		Where("lower(trim(name)) = lower(trim(?))", name).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *TeamRepository) FindTeamByInviteCode(code string) (models.Team, error) {
	var team models.Team
	if err := repo.database.Where("invite_code = ?", code).First(&team).Error; err != nil {
		return models.Team{}, err
	}
	return team, nil
}

func (repo *TeamRepository) FindMembershipByUserID(userID uint) (models.TeamMember, error) {
	var member models.TeamMember
	if err := repo.database.Where("user_id = ?", userID).First(&member).Error; err != nil {
		return models.TeamMember{}, err
	}
	return member, nil
}

func (repo *TeamRepository) CountMembers(teamID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.TeamMember{}).
		Where("team_id = ?", teamID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CreateTeamWithLeader inserts the team and its leader membership in one
// transaction so a team can never exist without a leader row.
func (repo *TeamRepository) CreateTeamWithLeader(team *models.Team, leader *models.TeamMember) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		leader.TeamID = team.ID
		return tx.Create(leader).Error
	})
}

func (repo *TeamRepository) AddMember(member *models.TeamMember) error {
	return repo.database.Create(member).Error
}

func (repo *TeamRepository) ListRoster(teamID uint) ([]models.TeamRosterEntry, error) {
	roster := make([]models.TeamRosterEntry, 0)
	if err := repo.database.
		Table("team_members").
		Select("team_members.user_id, users.full_name, users.email, team_members.role, team_members.joined_at").
		Joins("JOIN users ON users.id = team_members.user_id").
		Where("team_members.team_id = ?", teamID).
		Order("team_members.joined_at ASC, team_members.id ASC").
		Scan(&roster).Error; err != nil {
		return nil, err
	}
	return roster, nil
}
