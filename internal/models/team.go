package models

import "time"

const (
	TeamRoleLeader = "leader"
	TeamRoleMember = "member"
)

type Team struct {
	ID         uint      `gorm:"primaryKey"`
	Name       string    `gorm:"uniqueIndex;not null"`
	InviteCode string    `gorm:"uniqueIndex;not null"`
	LeaderID   uint      `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null"`
}

type TeamMember struct {
	ID       uint      `gorm:"primaryKey"`
	TeamID   uint      `gorm:"index;not null"`
	UserID   uint      `gorm:"uniqueIndex;not null"`
	Role     string    `gorm:"not null;default:member"`
	JoinedAt time.Time `gorm:"not null"`
}

// TeamRosterEntry is a read model produced by joining team_members with
// users; it is not a table.
type TeamRosterEntry struct {
	UserID   uint      `json:"user_id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}
