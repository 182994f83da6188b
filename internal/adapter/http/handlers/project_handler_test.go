package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pesquisa_pbr/internal/adapter/http/handlers/mocks"
	"pesquisa_pbr/internal/domain/entities"
	"pesquisa_pbr/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestProjectHandler_CreateProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects", h.CreateProject)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid schema maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects", h.CreateProject)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Project{}, entities.ErrMissingOptions)

		body := `{"name":"Projeto","questions":[{"text":"Escolha?","type":"SINGLE_CHOICE"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects", h.CreateProject)

		now := time.Now().UTC()
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, p entities.Project) (entities.Project, error) {
				if p.Name != "Pesquisa Eleitoral" || len(p.Questions) != 1 {
					t.Fatalf("payload not translated: %+v", p)
				}
				p.ID = "proj-1"
				p.CreationDate = now
				p.Status = entities.ProjectStatusPlanejamento
				return p, nil
			})

		body := `{"name":"Pesquisa Eleitoral","questions":[{"text":"Bairro?","type":"TEXT"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["id"] != "proj-1" || resp["statusLabel"] != "Planejamento" {
			t.Fatalf("unexpected response: %s", w.Body.String())
		}
	})
}

func TestProjectHandler_GetProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.GET("/v1/projects/:project_id", h.GetProject)

		uc.EXPECT().Get(gomock.Any(), "missing").Return(usecase.ProjectDetail{}, usecase.ErrProjectNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success includes areas and count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.GET("/v1/projects/:project_id", h.GetProject)

		detail := usecase.ProjectDetail{
			Project: entities.Project{ID: "proj-1", Name: "Projeto", Status: entities.ProjectStatusEmCampo},
			Areas: []entities.SurveyAreaAssignment{
				{ID: "a1", ProjectID: "proj-1", Status: entities.SurveyAreaStatusEmAndamento},
			},
			ResponsesCount: 7,
		}
		uc.EXPECT().Get(gomock.Any(), "proj-1").Return(detail, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/proj-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["responsesCount"] != float64(7) {
			t.Fatalf("unexpected response: %s", w.Body.String())
		}
	})
}

func TestProjectHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProjectUseCase(ctrl)
	h := NewProjectHandler(uc)

	r := gin.New()
	r.PATCH("/v1/projects/:project_id/status", h.UpdateProjectStatus)

	uc.EXPECT().UpdateStatus(gomock.Any(), "proj-1", entities.ProjectStatusEmCampo).
		Return(entities.Project{ID: "proj-1", Status: entities.ProjectStatusEmCampo}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/v1/projects/proj-1/status", bytes.NewBufferString(`{"status":"EM_CAMPO"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestProjectHandler_ListProjectResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProjectUseCase(ctrl)
	h := NewProjectHandler(uc)

	r := gin.New()
	r.GET("/v1/projects/:project_id/responses", h.ListProjectResponses)

	project := entities.Project{
		ID: "proj-1", Name: "Projeto", Status: entities.ProjectStatusEmCampo,
		Questions: []entities.Question{
			{ID: "q1", Text: "Rejeição?", Type: entities.QuestionTypeMultipleChoice, Options: []string{"A", "B"}},
		},
	}
	responses := []entities.SurveyResponse{
		{ID: "r1", ProjectID: "proj-1", Answers: []entities.Answer{
			{QuestionID: "q1", Value: entities.SelectionsValue([]string{"A", "B"})},
		}},
	}
	uc.EXPECT().Get(gomock.Any(), "proj-1").Return(usecase.ProjectDetail{Project: project}, nil)
	uc.EXPECT().ListResponses(gomock.Any(), "proj-1").Return(responses, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/projects/proj-1/responses", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	answers, _ := resp[0]["answers"].([]any)
	first, _ := answers[0].(map[string]any)
	if first["display"] != "A, B" {
		t.Fatalf("selections must join for display: %s", w.Body.String())
	}
}

func TestMapProjectError(t *testing.T) {
	if got := mapProjectError(usecase.ErrInvalidProjectName); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapProjectError(entities.ErrInvalidScaleBounds); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapProjectError(usecase.ErrProjectNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapProjectError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
