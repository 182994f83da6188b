package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pesquisa_pbr/internal/adapter/http/handlers/mocks"
	"pesquisa_pbr/internal/domain/entities"
	"pesquisa_pbr/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDashboardHandler_GetSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDashboardUseCase(ctrl)
	h := NewDashboardHandler(uc)

	r := gin.New()
	r.GET("/v1/dashboard/summary", h.GetSummary)

	pct := 65
	uc.EXPECT().Summary(gomock.Any()).Return(usecase.DashboardSummary{
		ActiveProjects:      1,
		TotalResponses:      12,
		ResearchersInField:  2,
		OverallQuotaPercent: &pct,
		RecentProjects: []usecase.ProjectProgress{
			{ID: "p1", Name: "Eleitoral", Status: entities.ProjectStatusEmCampo, QuotaPercent: &pct, CreationDate: "2024-06-04"},
			{ID: "p2", Name: "Sem Cotas", Status: entities.ProjectStatusPlanejamento, CreationDate: "2024-06-03"},
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/summary", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["overallQuotaPercent"] != "65%" {
		t.Fatalf("percent formatting: %s", w.Body.String())
	}
	recent, _ := resp["recentProjects"].([]any)
	second, _ := recent[1].(map[string]any)
	if second["quotaPercent"] != "N/A" {
		t.Fatalf("projects without quotas render N/A: %s", w.Body.String())
	}
}
