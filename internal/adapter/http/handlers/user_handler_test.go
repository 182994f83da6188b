package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pesquisa_pbr/internal/adapter/http/handlers/mocks"
	"pesquisa_pbr/internal/domain/entities"
	"pesquisa_pbr/internal/store"
	"pesquisa_pbr/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestUserHandler_CreateUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("duplicate email maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.POST("/v1/users", h.CreateUser)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.User{}, store.ErrDuplicateEmail)

		body := `{"name":"Outro","email":"carlos@email.com","role":"PESQUISADOR_CAMPO"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/users", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success omits password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.POST("/v1/users", h.CreateUser)

		created := entities.User{ID: "u-1", Name: "Diana Alves", Email: "diana@email.com", Role: entities.RolePesquisadorCampo, Password: "segredo"}
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(created, nil)

		body := `{"name":"Diana Alves","email":"diana@email.com","role":"PESQUISADOR_CAMPO","password":"segredo"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/users", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if _, leaked := resp["password"]; leaked {
			t.Fatalf("password leaked: %s", w.Body.String())
		}
		if resp["roleLabel"] != "Pesquisador de Campo" {
			t.Fatalf("missing role label: %s", w.Body.String())
		}
	})
}

func TestUserHandler_DeleteUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("root admin maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.DELETE("/v1/users/:user_id", h.DeleteUser)

		uc.EXPECT().Delete(gomock.Any(), "admin-1").Return(store.ErrRootAdminImmutable)

		req := httptest.NewRequest(http.MethodDelete, "/v1/users/admin-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.DELETE("/v1/users/:user_id", h.DeleteUser)

		uc.EXPECT().Delete(gomock.Any(), "u-2").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/users/u-2", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestUserHandler_UpdateUserRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIUserUseCase(ctrl)
	h := NewUserHandler(uc)

	r := gin.New()
	r.PATCH("/v1/users/:user_id/role", h.UpdateUserRole)

	uc.EXPECT().UpdateRole(gomock.Any(), "u-1", entities.RoleCoordenadorCampo).
		Return(entities.User{ID: "u-1", Role: entities.RoleCoordenadorCampo}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/v1/users/u-1/role", bytes.NewBufferString(`{"role":"COORDENADOR_CAMPO"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestMapUserError(t *testing.T) {
	if got := mapUserError(usecase.ErrInvalidUserEmail); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapUserError(usecase.ErrUserNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapUserError(store.ErrDuplicateEmail); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapUserError(store.ErrRootAdminImmutable); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapUserError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
