package domain

import "time"

// UserSkillScore holds the blended long-run proficiency for a (user, skill) pair.
type UserSkillScore struct {
	UserID      string
	SkillID     string
	Proficiency int
	UpdatedAt   time.Time
}

// UserRole records the target role a user is building a roadmap for.
type UserRole struct {
	UserID    string
	RoleID    string
	UpdatedAt time.Time
}
