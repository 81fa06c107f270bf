package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/cinelog/cinelog-server/internal/auth"
	"github.com/cinelog/cinelog-server/internal/domain"
	domainerrors "github.com/cinelog/cinelog-server/internal/errors"
	"github.com/cinelog/cinelog-server/internal/store"
	"github.com/cinelog/cinelog-server/internal/validation"
)

// UserService orchestrates user account operations.
type UserService struct {
	store     store.Store
	hasher    auth.Hasher
	logger    *slog.Logger
	validator *validation.Validator
	now       func() time.Time
}

// NewUserService creates a new user service.
func NewUserService(store store.Store, hasher auth.Hasher, logger *slog.Logger) *UserService {
	return &UserService{
		store:     store,
		hasher:    hasher,
		logger:    logger,
		validator: validation.New(),
		now:       time.Now,
	}
}

// ListUsers returns all registered users.
func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.store.ListUsers(ctx)
}

// GetUser returns a single user.
func (s *UserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.store.GetUser(ctx, id)
}

// RegisterUserRequest contains fields for registering a new account.
type RegisterUserRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=200"`
	Alias     string `json:"alias" validate:"required,min=1,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
	Role      string `json:"role" validate:"omitempty,oneof=admin member"`
}

// Register creates a new user account. An alias or email already in use is a
// conflict, checked before the insert.
func (s *UserService) Register(ctx context.Context, req RegisterUserRequest) (*domain.User, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	taken, err := s.store.UserExistsByAliasOrEmail(ctx, req.Alias, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domainerrors.Conflict("alias or email already registered")
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to hash password")
	}

	role := domain.RoleMember
	if req.Role != "" {
		role = domain.Role(req.Role)
	}

	u := &domain.User{
		Role:         role,
		AvatarURL:    req.AvatarURL,
		Name:         req.Name,
		Alias:        req.Alias,
		Email:        req.Email,
		PasswordHash: hash,
		RegisteredAt: s.now(),
	}
	if err := s.store.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "id", u.ID, "alias", u.Alias)
	return u, nil
}

// UpdateProfileRequest contains the mutable profile fields.
type UpdateProfileRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=200"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
	Role      string `json:"role" validate:"omitempty,oneof=admin member"`
}

// UpdateProfile updates a user's profile. Alias, email, and password have
// dedicated flows and are untouched here.
func (s *UserService) UpdateProfile(ctx context.Context, id int64, req UpdateProfileRequest) (*domain.User, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	u, err := s.store.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	u.Name = req.Name
	u.AvatarURL = req.AvatarURL
	if req.Role != "" {
		u.Role = domain.Role(req.Role)
	}

	if err := s.store.UpdateUserProfile(ctx, u); err != nil {
		return nil, err
	}

	s.logger.Info("user profile updated", "id", u.ID)
	return u, nil
}

// ChangePasswordRequest contains fields for the password change flow.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// ChangePassword replaces a user's password after verifying the current one.
// A mismatched confirmation is a validation error; a wrong current password
// is unauthorized.
func (s *UserService) ChangePassword(ctx context.Context, id int64, req ChangePasswordRequest) error {
	if err := s.validator.Validate(req); err != nil {
		return err
	}
	if req.NewPassword != req.ConfirmPassword {
		return domainerrors.Validation("new password and confirmation do not match")
	}

	u, err := s.store.GetUser(ctx, id)
	if err != nil {
		return err
	}

	ok, err := s.hasher.Verify(u.PasswordHash, req.CurrentPassword)
	if err != nil {
		return domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to verify password")
	}
	if !ok {
		return domainerrors.Unauthorized("current password is incorrect")
	}

	hash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to hash password")
	}

	if err := s.store.UpdateUserPassword(ctx, id, hash); err != nil {
		return err
	}

	s.logger.Info("user password changed", "id", id)
	return nil
}

// ChangeAliasRequest contains the replacement alias.
type ChangeAliasRequest struct {
	Alias string `json:"alias" validate:"required,min=1,max=50"`
}

// ChangeAlias replaces a user's alias after re-checking uniqueness.
func (s *UserService) ChangeAlias(ctx context.Context, id int64, req ChangeAliasRequest) (*domain.User, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	taken, err := s.store.UserExistsByAliasOrEmail(ctx, req.Alias, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domainerrors.Conflictf("alias %q already registered", req.Alias)
	}

	if err := s.store.UpdateUserAlias(ctx, id, req.Alias); err != nil {
		return nil, err
	}

	s.logger.Info("user alias changed", "id", id, "alias", req.Alias)
	return s.store.GetUser(ctx, id)
}
