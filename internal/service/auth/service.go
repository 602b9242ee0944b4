package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"bookstore-api/internal/domain"
)

// DefaultTokenTTL is how long an issued token stays valid.
const DefaultTokenTTL = 8 * time.Hour

// Identity is the authenticated caller carried through a request.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}

type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Service is the admin authentication gate: it logs admins in and verifies
// bearer tokens on admin routes.
type Service struct {
	users  userRepo
	tokens *tokenManager
}

// New creates a Service signing tokens with secret for ttl.
func New(users userRepo, secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Service{users: users, tokens: newTokenManager(secret, ttl)}
}

// Login checks email and password against the stored admin accounts and
// issues a signed token. A matching email with a non-admin role answers
// exactly like an unknown email.
func (s *Service) Login(ctx context.Context, email, password string) (*Identity, string, error) {
	u, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if u.Role != domain.RoleAdmin {
		return nil, "", domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	id := Identity{ID: u.ID, Email: u.Email, Role: u.Role, Name: u.Name}
	token, err := s.tokens.Issue(id)
	if err != nil {
		return nil, "", err
	}
	return &id, token, nil
}

// Authenticate extracts and verifies a bearer token from an Authorization
// header value. An absent or malformed header is ErrMissingToken; a header
// whose token fails verification is ErrInvalidToken.
func (s *Service) Authenticate(header string) (*Identity, error) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return nil, domain.ErrMissingToken
	}
	return s.tokens.Verify(strings.TrimSpace(token))
}

// RequireRole rejects identities whose role differs from the wanted one.
func (s *Service) RequireRole(id *Identity, role string) error {
	if id == nil || id.Role != role {
		return domain.ErrForbidden
	}
	return nil
}
