// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/smartstyle/api/internal/config"
	"github.com/smartstyle/api/internal/core"
	"github.com/smartstyle/api/internal/middleware"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already exists")
)

// OperatorSubject is the fixed token subject for the configured operator
// account. It never collides with user ids, which are UUIDs.
const OperatorSubject = "operator"

const defaultRole = "customer"

type UserInfo struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

type UserProvider interface {
	GetByEmail(ctx context.Context, email string) (*UserInfo, error)
	GetByID(ctx context.Context, id string) (*UserInfo, error)
	Create(
		ctx context.Context,
		name, email, passwordHash, role string,
	) (*UserInfo, error)
}

type Service struct {
	users    UserProvider
	tokens   *TokenIssuer
	operator config.OperatorConfig
}

func NewService(
	users UserProvider,
	tokens *TokenIssuer,
	operator config.OperatorConfig,
) *Service {
	return &Service{
		users:    users,
		tokens:   tokens,
		operator: operator,
	}
}

// Signup creates a user with a salted one-way hash of the password. The
// plaintext is discarded; a reused email fails with ErrEmailExists.
func (s *Service) Signup(
	ctx context.Context,
	req SignupRequest,
) (*UserResponse, error) {
	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = defaultRole
	}

	user, err := s.users.Create(ctx, req.Name, req.Email, passwordHash, role)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return toUserResponse(user), nil
}

// Login resolves credentials in two branches: the configured operator pair
// short-circuits before any store access; everything else goes through the
// credential store. Unknown email and wrong password collapse to the same
// error.
func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (*AuthResponse, error) {
	if s.isOperator(req.Email, req.Password) {
		return s.mintResponse(OperatorSubject, s.operatorProfile())
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing attack prevention - always run a full verify
			_, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	valid, err := core.VerifyPasswordTimingSafe(req.Password, &user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return nil, ErrInvalidCredentials
	}

	return s.mintResponse(user.ID, toUserResponse(user))
}

func (s *Service) isOperator(email, password string) bool {
	emailMatch := subtle.ConstantTimeCompare(
		[]byte(email),
		[]byte(s.operator.Email),
	)
	passwordMatch := subtle.ConstantTimeCompare(
		[]byte(password),
		[]byte(s.operator.Password),
	)
	return emailMatch&passwordMatch == 1
}

func (s *Service) operatorProfile() *UserResponse {
	return &UserResponse{
		ID:    OperatorSubject,
		Name:  "Admin",
		Email: s.operator.Email,
		Role:  "admin",
	}
}

// ResolveSubject maps a verified token subject to an identity. The operator
// sentinel resolves without touching the credential store.
func (s *Service) ResolveSubject(
	ctx context.Context,
	subject string,
) (*middleware.Identity, error) {
	if subject == OperatorSubject {
		profile := s.operatorProfile()
		return &middleware.Identity{
			ID:    profile.ID,
			Name:  profile.Name,
			Email: profile.Email,
			Role:  profile.Role,
		}, nil
	}

	user, err := s.users.GetByID(ctx, subject)
	if err != nil {
		return nil, err
	}

	return &middleware.Identity{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

func (s *Service) mintResponse(
	subject string,
	user *UserResponse,
) (*AuthResponse, error) {
	issued, err := s.tokens.CreateToken(subject)
	if err != nil {
		return nil, fmt.Errorf("create token: %w", err)
	}

	return &AuthResponse{
		User: *user,
		Token: TokenResponse{
			Token:     issued.Token,
			TokenType: "Bearer",
			ExpiresIn: int(time.Until(issued.ExpiresAt) / time.Second),
			ExpiresAt: issued.ExpiresAt,
		},
	}, nil
}

func toUserResponse(u *UserInfo) *UserResponse {
	return &UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

var _ middleware.IdentityResolver = (*Service)(nil)
