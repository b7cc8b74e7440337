// Package persist moves the in-memory store to and from disk at the process
// boundary. The snapshot lives in a SQLite file with one table per entity
// kind; a pipe-delimited text file remains supported as the interchange format
// for user accounts.
package persist

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/careerdesk/careerdesk/internal/models"
	"github.com/careerdesk/careerdesk/internal/store"
)

// Manager loads and saves store snapshots.
type Manager struct {
	db            *gorm.DB
	usersTextPath string
	seedUsers     bool
	logger        zerolog.Logger
}

// NewManager constructs a persistence manager over the given snapshot database.
func NewManager(db *gorm.DB, usersTextPath string, seedUsers bool, logger zerolog.Logger) *Manager {
	return &Manager{
		db:            db,
		usersTextPath: usersTextPath,
		seedUsers:     seedUsers,
		logger:        logger.With().Str("component", "persist").Logger(),
	}
}

// Load reads every collection from the snapshot into a fresh store. A failure
// on any collection falls back to an empty collection; an empty user set falls
// back to the users text file and finally to the hardcoded sample accounts.
// Load never fails the process start.
func (m *Manager) Load(ctx context.Context) *store.Store {
	st := store.New()

	if err := m.db.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.Internship{},
		&models.Application{},
		&models.WithdrawalRequest{},
	); err != nil {
		m.logger.Warn().Err(err).Msg("snapshot migration failed, starting empty")
		m.loadUserFallbacks(st)
		return st
	}

	var users []models.User
	if err := m.db.WithContext(ctx).Find(&users).Error; err != nil {
		m.logger.Warn().Err(err).Msg("failed to load users from snapshot")
	}
	for i := range users {
		st.AddUser(&users[i])
	}
	if len(users) == 0 {
		m.loadUserFallbacks(st)
	}

	var internships []models.Internship
	if err := m.db.WithContext(ctx).Find(&internships).Error; err != nil {
		m.logger.Warn().Err(err).Msg("failed to load internships from snapshot")
	}
	for i := range internships {
		st.AddInternship(&internships[i])
	}

	var applications []models.Application
	if err := m.db.WithContext(ctx).Find(&applications).Error; err != nil {
		m.logger.Warn().Err(err).Msg("failed to load applications from snapshot")
	}
	for i := range applications {
		st.AddApplication(&applications[i])
	}

	var withdrawals []models.WithdrawalRequest
	if err := m.db.WithContext(ctx).Find(&withdrawals).Error; err != nil {
		m.logger.Warn().Err(err).Msg("failed to load withdrawal requests from snapshot")
	}
	for i := range withdrawals {
		st.AddWithdrawal(&withdrawals[i])
	}

	st.RestoreCounters()

	m.logger.Info().
		Int("users", len(st.Users())).
		Int("internships", len(internships)).
		Int("applications", len(applications)).
		Int("withdrawals", len(withdrawals)).
		Msg("store loaded")

	return st
}

func (m *Manager) loadUserFallbacks(st *store.Store) {
	users, err := LoadUsersText(m.usersTextPath)
	if err != nil {
		m.logger.Warn().Err(err).Str("path", m.usersTextPath).Msg("users text file unavailable")
	}
	for _, user := range users {
		st.AddUser(user)
	}
	if len(users) > 0 {
		m.logger.Info().Int("users", len(users)).Msg("users loaded from text file")
		return
	}

	if !m.seedUsers {
		return
	}
	for _, user := range SampleUsers() {
		st.AddUser(user)
	}
	m.logger.Info().Msg("sample users initialized")
}

// Save writes every collection to the snapshot, replacing the previous
// contents in one transaction, and exports the user accounts to the text
// interchange file. A text export failure is logged but does not fail the
// save; the snapshot remains authoritative.
func (m *Manager) Save(ctx context.Context, st *store.Store) error {
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := replaceAll(tx, st.Users()); err != nil {
			return fmt.Errorf("users: %w", err)
		}
		if err := replaceAll(tx, st.Internships()); err != nil {
			return fmt.Errorf("internships: %w", err)
		}
		if err := replaceAll(tx, st.Applications()); err != nil {
			return fmt.Errorf("applications: %w", err)
		}
		if err := replaceAll(tx, st.Withdrawals()); err != nil {
			return fmt.Errorf("withdrawal requests: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	users := st.Users()
	sort.Slice(users, func(a, b int) bool { return users[a].ID < users[b].ID })
	if err := WriteUsersText(m.usersTextPath, users); err != nil {
		m.logger.Warn().Err(err).Str("path", m.usersTextPath).Msg("failed to export users text file")
	}

	m.logger.Info().Msg("store saved")
	return nil
}

func replaceAll[T any](tx *gorm.DB, records []*T) error {
	var zero T
	if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&zero).Error; err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}
	return tx.Create(records).Error
}
