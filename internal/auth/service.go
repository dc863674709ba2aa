package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riftbounddb/backend/internal/users"
	pkgAuth "github.com/riftbounddb/backend/pkg/auth"
	"github.com/riftbounddb/backend/pkg/config"
	pkgerrors "github.com/riftbounddb/backend/pkg/errors"
	"github.com/riftbounddb/backend/pkg/security"
)

// Identical for unknown email and wrong password so responses never reveal
// whether an account exists.
const invalidCredentialsMessage = "Invalid credentials"

// Service defines the behavior needed by the auth controllers.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*Result, error)
	Login(ctx context.Context, req LoginRequest) (*Result, error)
	CurrentUser(ctx context.Context, userID string) (*users.UserDTO, error)
}

type userRepository interface {
	Create(ctx context.Context, dto users.CreateUserDTO) (*users.User, error)
	FindByEmail(ctx context.Context, email string) (*users.User, error)
	FindByID(ctx context.Context, id string) (*users.User, error)
}

type service struct {
	users       userRepository
	jwtCfg      config.JWTConfig
	passwordCfg config.PasswordConfig
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	UserRepo       userRepository
	JWTConfig      config.JWTConfig
	PasswordConfig config.PasswordConfig
}

// NewService constructs an auth service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.UserRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	return &service{
		users:       params.UserRepo,
		jwtCfg:      params.JWTConfig,
		passwordCfg: params.PasswordConfig,
	}, nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*Result, error) {
	email := normalizeEmail(req.Email)
	if req.Name == "" || email == "" || req.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Missing name, email, or password")
	}
	minLen := s.passwordCfg.MinLength
	if minLen <= 0 {
		minLen = 6
	}
	if len(req.Password) < minLen {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("Password must be at least %d characters", minLen))
	}

	// Cheap pre-check for a friendlier error; the unique index is what
	// actually guards against concurrent registrations.
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "Email already used")
	} else if !errors.Is(err, users.ErrNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check user email")
	}

	passwordHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	user, err := s.users.Create(ctx, users.CreateUserDTO{
		Name:         req.Name,
		Email:        email,
		PasswordHash: passwordHash,
	})
	if errors.Is(err, users.ErrDuplicateEmail) {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "Email already used")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
	}

	return s.issueToken(user)
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*Result, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Missing email or password")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, users.ErrNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find user")
	}

	match, err := security.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !match {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}

	return s.issueToken(user)
}

func (s *service) CurrentUser(ctx context.Context, userID string) (*users.UserDTO, error) {
	if userID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}
	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, users.ErrNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "User not found")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find user")
	}
	return users.FromModel(user), nil
}

func (s *service) issueToken(user *users.User) (*Result, error) {
	token, err := pkgAuth.MintSessionToken(s.jwtCfg, time.Now().UTC(), pkgAuth.TokenPayload{
		UserID: user.ID,
		Email:  user.Email,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt")
	}
	return &Result{Token: token, User: users.FromModel(user)}, nil
}

func normalizeEmail(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
