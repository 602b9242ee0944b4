package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"bookstore-api/internal/domain"
)

type stubUserRepo struct {
	users map[string]domain.User
	err   error
}

func (s *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func repoWith(t *testing.T, users ...domain.User) *stubUserRepo {
	t.Helper()
	m := make(map[string]domain.User, len(users))
	for _, u := range users {
		m[u.Email] = u
	}
	return &stubUserRepo{users: m}
}

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(h)
}

func TestLoginHappyPath(t *testing.T) {
	repo := repoWith(t, domain.User{
		ID:           "u1",
		Email:        "admin@example.com",
		PasswordHash: hash(t, "Sup3rSecret"),
		Role:         domain.RoleAdmin,
		Name:         "Ana",
	})
	svc := New(repo, "test-secret", time.Hour)

	id, token, err := svc.Login(context.Background(), "admin@example.com", "Sup3rSecret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if id.ID != "u1" || id.Role != domain.RoleAdmin || id.Name != "Ana" {
		t.Fatalf("unexpected identity: %+v", id)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}

	got, err := svc.Authenticate("Bearer " + token)
	if err != nil {
		t.Fatalf("authenticate issued token: %v", err)
	}
	if got.ID != "u1" || got.Email != "admin@example.com" {
		t.Fatalf("unexpected identity from token: %+v", got)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := repoWith(t, domain.User{
		Email:        "admin@example.com",
		PasswordHash: hash(t, "right"),
		Role:         domain.RoleAdmin,
	})
	svc := New(repo, "test-secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "admin@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestLoginNonAdminAnswersLikeUnknownEmail(t *testing.T) {
	repo := repoWith(t, domain.User{
		Email:        "user@example.com",
		PasswordHash: hash(t, "Sup3rSecret"),
		Role:         "customer",
	})
	svc := New(repo, "test-secret", time.Hour)

	_, _, gotNonAdmin := svc.Login(context.Background(), "user@example.com", "Sup3rSecret")
	_, _, gotUnknown := svc.Login(context.Background(), "nobody@example.com", "Sup3rSecret")
	if !errors.Is(gotNonAdmin, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for non-admin, got %v", gotNonAdmin)
	}
	if !errors.Is(gotNonAdmin, gotUnknown) {
		t.Fatalf("non-admin (%v) must be indistinguishable from unknown email (%v)", gotNonAdmin, gotUnknown)
	}
}

func TestLoginRepoErrorPropagates(t *testing.T) {
	svc := New(&stubUserRepo{err: errors.New("boom")}, "test-secret", time.Hour)
	_, _, err := svc.Login(context.Background(), "admin@example.com", "pw")
	if err == nil || err.Error() != "boom" {
		t.Fatalf("expected repo error, got %v", err)
	}
}

func TestAuthenticateMissingOrMalformedHeader(t *testing.T) {
	svc := New(repoWith(t), "test-secret", time.Hour)
	for _, header := range []string{"", "Bearer", "Bearer   ", "Basic abc", "token-without-scheme"} {
		if _, err := svc.Authenticate(header); !errors.Is(err, domain.ErrMissingToken) {
			t.Fatalf("header %q: expected missing token, got %v", header, err)
		}
	}
}

func TestAuthenticateTamperedToken(t *testing.T) {
	svc := New(repoWith(t), "test-secret", time.Hour)
	token, err := svc.tokens.Issue(Identity{ID: "u1", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = svc.Authenticate("Bearer " + token + "x")
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestAuthenticateWrongSecret(t *testing.T) {
	issuer := New(repoWith(t), "secret-a", time.Hour)
	verifier := New(repoWith(t), "secret-b", time.Hour)
	token, err := issuer.tokens.Issue(Identity{ID: "u1"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.Authenticate("Bearer " + token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestAuthenticateExpiredToken(t *testing.T) {
	svc := New(repoWith(t), "test-secret", time.Hour)
	issued := time.Now()
	svc.tokens.now = func() time.Time { return issued }
	token, err := svc.tokens.Issue(Identity{ID: "u1"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	svc.tokens.now = func() time.Time { return issued.Add(2 * time.Hour) }
	if _, err := svc.Authenticate("Bearer " + token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected expired token to be invalid, got %v", err)
	}
}

func TestRequireRole(t *testing.T) {
	svc := New(repoWith(t), "test-secret", time.Hour)

	if err := svc.RequireRole(&Identity{Role: domain.RoleAdmin}, domain.RoleAdmin); err != nil {
		t.Fatalf("admin should pass: %v", err)
	}
	if err := svc.RequireRole(&Identity{Role: "customer"}, domain.RoleAdmin); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if err := svc.RequireRole(nil, domain.RoleAdmin); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden for nil identity, got %v", err)
	}
}
