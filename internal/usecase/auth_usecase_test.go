package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"pesquisa_pbr/internal/domain/entities"
	"pesquisa_pbr/internal/store"
)

func authStore() *store.Store {
	return store.New(store.State{
		Users: []entities.User{
			{ID: "u1", Name: "Admin PBR", Email: "admin@pbr.com", Role: entities.RoleAdministradorSistema, Password: "admin"},
			{ID: "u2", Name: "Beatriz Lima", Email: "beatriz.lima@email.com", Role: entities.RolePesquisadorCampo},
		},
	})
}

func TestLogin(t *testing.T) {
	uc := NewAuthUseCase(authStore(), "test-secret", time.Hour)
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		user, token, err := uc.Login(ctx, "admin@pbr.com", "admin")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != "u1" || token == "" {
			t.Fatalf("unexpected login result: %+v token=%q", user, token)
		}
		if user.Password != "" {
			t.Fatalf("password must not leave the use case")
		}
	})

	t.Run("email match is case-insensitive", func(t *testing.T) {
		if _, _, err := uc.Login(ctx, "  Admin@PBR.com ", "admin"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		if _, _, err := uc.Login(ctx, "admin@pbr.com", "nope"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("account without password cannot log in", func(t *testing.T) {
		if _, _, err := uc.Login(ctx, "beatriz.lima@email.com", ""); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		if _, _, err := uc.Login(ctx, "ghost@pbr.com", "admin"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestUserFromToken(t *testing.T) {
	st := authStore()
	uc := NewAuthUseCase(st, "test-secret", time.Hour)
	ctx := context.Background()

	_, token, err := uc.Login(ctx, "admin@pbr.com", "admin")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	t.Run("round trip", func(t *testing.T) {
		user, err := uc.UserFromToken(ctx, token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != "u1" || user.Role != entities.RoleAdministradorSistema {
			t.Fatalf("unexpected user: %+v", user)
		}
	})

	t.Run("role change takes effect on next resolution", func(t *testing.T) {
		demoted := entities.User{ID: "u3", Name: "Carlos Santos", Email: "carlos@email.com", Role: entities.RoleCoordenadorCampo, Password: "123"}
		if err := st.Dispatch(store.AddUser{User: demoted}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		_, carlosToken, err := uc.Login(ctx, "carlos@email.com", "123")
		if err != nil {
			t.Fatalf("login: %v", err)
		}
		if err := st.Dispatch(store.UpdateUserRole{UserID: "u3", Role: entities.RolePesquisadorCampo}); err != nil {
			t.Fatalf("demote: %v", err)
		}
		user, err := uc.UserFromToken(ctx, carlosToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Role != entities.RolePesquisadorCampo {
			t.Fatalf("expected demoted role, got %s", user.Role)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		if _, err := uc.UserFromToken(ctx, "not-a-token"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewAuthUseCase(st, "other-secret", time.Hour)
		if _, err := other.UserFromToken(ctx, token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		short := NewAuthUseCase(st, "test-secret", -time.Minute)
		_, expired, err := short.Login(ctx, "admin@pbr.com", "admin")
		if err != nil {
			t.Fatalf("login: %v", err)
		}
		if _, err := short.UserFromToken(ctx, expired); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("deleted user", func(t *testing.T) {
		ghost := entities.User{ID: "u9", Name: "Temp", Email: "temp@email.com", Role: entities.RolePesquisadorCampo, Password: "tmp"}
		if err := st.Dispatch(store.AddUser{User: ghost}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		_, ghostToken, err := uc.Login(ctx, "temp@email.com", "tmp")
		if err != nil {
			t.Fatalf("login: %v", err)
		}
		if err := st.Dispatch(store.DeleteUser{UserID: "u9"}); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if _, err := uc.UserFromToken(ctx, ghostToken); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}
