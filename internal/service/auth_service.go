package service

import (
	"errors"
	"fmt"
	"time"

	"clinic-management-backend/internal/models"
	"clinic-management-backend/internal/repository"
	"clinic-management-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthService implements the credential store and the session state machine:
// Anonymous -> Authenticated on successful verification, back to Anonymous on
// logout. Sessions are persisted so logout revokes the token immediately.
type AuthService struct {
	userRepo    *repository.UserRepository
	sessionRepo *repository.SessionRepository
	tokens      *utils.SessionTokenManager
	logger      *zap.Logger

	// dummyHash absorbs a bcrypt comparison when the username is unknown, so
	// "unknown user" and "wrong password" take indistinguishable time.
	dummyHash string
}

func NewAuthService(
	userRepo *repository.UserRepository,
	sessionRepo *repository.SessionRepository,
	tokens *utils.SessionTokenManager,
	logger *zap.Logger,
) *AuthService {
	dummyHash, err := utils.HashPassword(uuid.New().String())
	if err != nil {
		// bcrypt only fails on an invalid cost; the constant cost is valid
		panic(fmt.Sprintf("auth: failed to prepare dummy hash: %v", err))
	}
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		tokens:      tokens,
		logger:      logger,
		dummyHash:   dummyHash,
	}
}

// Register creates a new non-admin account with zero credits
func (s *AuthService) Register(username, password string) (*models.User, error) {
	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: passwordHash,
		Credits:      0,
		IsAdmin:      false,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered", zap.String("username", username))
	return user, nil
}

// Login verifies credentials and establishes a session. The failure shape is
// identical whether the username is unknown or the password is wrong.
func (s *AuthService) Login(username, password string) (string, *models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		utils.ComparePassword(s.dummyHash, password)
		return "", nil, ErrInvalidCredentials
	}

	if !utils.ComparePassword(user.PasswordHash, password) {
		return "", nil, ErrInvalidCredentials
	}

	sessionID := utils.NewSessionID()
	session := &models.Session{
		UserID:    user.ID,
		TokenHash: utils.HashSessionID(sessionID),
		ExpiresAt: time.Now().Add(s.tokens.TTL()),
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return "", nil, fmt.Errorf("failed to store session: %w", err)
	}

	token, err := s.tokens.Generate(user.ID, sessionID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	s.logger.Info("user logged in", zap.String("username", username))
	return token, user, nil
}

// Authenticate resolves a session token to its identity, or fails with
// ErrInvalidSession for anything not backed by a live session.
func (s *AuthService) Authenticate(token string) (*models.User, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil, ErrInvalidSession
	}

	session, err := s.sessionRepo.FindByTokenHash(utils.HashSessionID(claims.SessionID))
	if err != nil {
		return nil, ErrInvalidSession
	}
	if time.Now().After(session.ExpiresAt) {
		return nil, ErrInvalidSession
	}

	return &session.User, nil
}

// Logout revokes the session behind the given token
func (s *AuthService) Logout(token string) error {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		// Nothing to revoke for an unparseable token
		return nil
	}
	return s.sessionRepo.RevokeByTokenHash(utils.HashSessionID(claims.SessionID))
}

// EnsureBootstrapAdmin creates the distinguished admin account on first
// startup if no user with the configured username exists.
func (s *AuthService) EnsureBootstrapAdmin(username, password string) error {
	_, err := s.userRepo.FindByUsername(username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap password: %w", err)
	}

	admin := &models.User{
		Username:     username,
		PasswordHash: passwordHash,
		Credits:      0,
		IsAdmin:      true,
	}
	if err := s.userRepo.Create(admin); err != nil {
		return fmt.Errorf("failed to create bootstrap admin: %w", err)
	}

	s.logger.Info("bootstrap admin created", zap.String("username", username))
	return nil
}
