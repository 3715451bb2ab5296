package service

import (
	"context"
	"strings"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/events"
	"hoteldesk/internal/models"

	"github.com/rs/zerolog"
)

// AccountService manages operator accounts. It holds the account list for
// the process lifetime and rewrites the store on every change.
type AccountService struct {
	accounts []models.Account
	store    domain.Store
	eventBus domain.EventPublisher
	logger   *zerolog.Logger
}

func NewAccountService(accounts []models.Account, store domain.Store, eventBus domain.EventPublisher, logger *zerolog.Logger) *AccountService {
	return &AccountService{
		accounts: accounts,
		store:    store,
		eventBus: eventBus,
		logger:   logger,
	}
}

// EnsureOwner guarantees at least one owner account exists before any other
// operation proceeds. A fresh install gets the default owner pair.
func (s *AccountService) EnsureOwner(ctx context.Context) error {
	for i := range s.accounts {
		if s.accounts[i].IsOwner() {
			return nil
		}
	}

	s.logger.Warn().Msg("no owner account found, creating default owners")
	s.accounts = append(s.accounts,
		models.Account{Username: models.DefaultOwnerUsername, Password: models.DefaultOwnerPassword, Role: models.RoleOwner, IsActive: true},
		models.Account{Username: models.DefaultOwnerBackupUsername, Password: models.DefaultOwnerPassword, Role: models.RoleOwner, IsActive: true},
	)
	return s.save(ctx)
}

// Authenticate checks credentials and rejects deactivated accounts.
func (s *AccountService) Authenticate(username, password string) (*models.Account, error) {
	account := s.lookup(username)
	if account == nil || account.Password != password {
		return nil, ErrInvalidCredentials
	}
	if !account.IsActive {
		return nil, ErrAccountInactive
	}
	return account, nil
}

// CreateStaff adds a desk staff account. Usernames are unique
// case-insensitively.
func (s *AccountService) CreateStaff(ctx context.Context, username, password, actor string) error {
	if s.lookup(username) != nil {
		return ErrDuplicateUsername
	}

	s.accounts = append(s.accounts, models.Account{
		Username: username,
		Password: password,
		Role:     models.RoleStaff,
		IsActive: true,
	})
	if err := s.save(ctx); err != nil {
		return err
	}

	if s.eventBus != nil {
		payload := events.AccountEventPayload{Username: username, Role: models.RoleStaff, Actor: actor}
		if err := s.eventBus.PublishJSON(events.EventAccountCreated, payload); err != nil {
			s.logger.Error().Err(err).Str("username", username).Msg("publish event error")
		}
	}
	return nil
}

// ResetPassword replaces the password for an existing account.
func (s *AccountService) ResetPassword(ctx context.Context, username, newPassword string) error {
	account := s.lookup(username)
	if account == nil {
		return ErrNotFound
	}
	account.Password = newPassword
	return s.save(ctx)
}

// SetActive toggles whether the account may log in.
func (s *AccountService) SetActive(ctx context.Context, username string, active bool) error {
	account := s.lookup(username)
	if account == nil {
		return ErrNotFound
	}
	account.IsActive = active
	return s.save(ctx)
}

// All returns the accounts in stored order.
func (s *AccountService) All() []models.Account {
	return append([]models.Account(nil), s.accounts...)
}

// Get returns the account with the given username, case-insensitively.
func (s *AccountService) Get(username string) (*models.Account, error) {
	account := s.lookup(username)
	if account == nil {
		return nil, ErrNotFound
	}
	return account, nil
}

func (s *AccountService) lookup(username string) *models.Account {
	for i := range s.accounts {
		if strings.EqualFold(s.accounts[i].Username, username) {
			return &s.accounts[i]
		}
	}
	return nil
}

func (s *AccountService) save(ctx context.Context) error {
	if err := s.store.SaveAccounts(ctx, s.accounts); err != nil {
		s.logger.Error().Err(err).Msg("save accounts")
		return err
	}
	return nil
}
