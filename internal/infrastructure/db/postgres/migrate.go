package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/scoresense/sports-api/internal/core/domain"
)

// Migrate creates or updates the schema for every entity table.
func Migrate(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).AutoMigrate(
		&domain.Role{},
		&domain.User{},
		&domain.Team{},
		&domain.Player{},
		&domain.Match{},
		&domain.News{},
		&domain.PlayerStats{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// SeedRoles inserts the static role set. Existing rows are left untouched so
// the command is safe to re-run.
func SeedRoles(ctx context.Context, db *gorm.DB) error {
	roles := []domain.Role{
		{RoleID: 1, Name: domain.RoleAdmin, Description: "Full administrative access"},
		{RoleID: domain.DefaultRoleID, Name: domain.RoleUser, Description: "Standard user access"},
	}
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&roles).Error
	if err != nil {
		return fmt.Errorf("seed roles: %w", err)
	}
	return nil
}
