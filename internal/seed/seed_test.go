package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/config"
)

type stubAuth struct {
	calls    int
	username string
	created  bool
	err      error
}

func (s *stubAuth) Authenticate(context.Context, string, string) (*models.User, error) {
	return nil, errors.New("not used")
}

func (s *stubAuth) CreateUser(context.Context, string, string, models.Role) (*models.User, error) {
	return nil, errors.New("not used")
}

func (s *stubAuth) ListUsers(context.Context) ([]models.User, error) {
	return nil, errors.New("not used")
}

func (s *stubAuth) EnsureAdmin(_ context.Context, username, _ string) (bool, error) {
	s.calls++
	s.username = username
	return s.created, s.err
}

func TestCreateDefaultData(t *testing.T) {
	cfg := &config.Config{}
	cfg.Seed.AdminUsername = "admin"

	t.Run("no password configured", func(t *testing.T) {
		stub := &stubAuth{}
		if err := CreateDefaultData(context.Background(), stub, cfg, zerolog.Nop()); err != nil {
			t.Fatal(err)
		}
		if stub.calls != 0 {
			t.Error("admin seeded without a password")
		}
	})

	cfg.Seed.AdminPassword = "change-me"

	t.Run("seeds the configured admin", func(t *testing.T) {
		stub := &stubAuth{created: true}
		if err := CreateDefaultData(context.Background(), stub, cfg, zerolog.Nop()); err != nil {
			t.Fatal(err)
		}
		if stub.calls != 1 || stub.username != "admin" {
			t.Errorf("calls = %d, username = %q", stub.calls, stub.username)
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		boom := errors.New("boom")
		stub := &stubAuth{err: boom}
		if err := CreateDefaultData(context.Background(), stub, cfg, zerolog.Nop()); !errors.Is(err, boom) {
			t.Errorf("err = %v", err)
		}
	})
}
