package request

import (
	"testing"

	"pesquisa_pbr/internal/domain/entities"
)

func TestProjectRequest_ToEntity(t *testing.T) {
	min, max := 1, 5
	req := ProjectRequest{
		Name:        "  Pesquisa Eleitoral  ",
		Description: "Intenção de voto",
		Status:      "EM_CAMPO",
		Quotas: []QuotaRequest{
			{Name: "Região Sudeste", TargetCount: 1000, AchievedCount: 650},
		},
		Questions: []QuestionRequest{
			{Text: "Avaliação?", Type: "SCALE", ScaleMin: &min, ScaleMax: &max, ScaleLabels: []string{"Péssima", "Ruim", "Regular", "Boa", "Ótima"}},
			{Text: "Rejeição?", Type: "MULTIPLE_CHOICE", Options: []string{"A", "B"}},
		},
	}

	p := req.ToEntity()
	if p.Name != "Pesquisa Eleitoral" {
		t.Fatalf("name not trimmed: %q", p.Name)
	}
	if p.Status != entities.ProjectStatusEmCampo {
		t.Fatalf("status not mapped: %s", p.Status)
	}
	if len(p.Quotas) != 1 || p.Quotas[0].AchievedCount != 650 {
		t.Fatalf("quotas not mapped: %+v", p.Quotas)
	}
	if len(p.Questions) != 2 || p.Questions[0].Type != entities.QuestionTypeScale || *p.Questions[0].ScaleMax != 5 {
		t.Fatalf("questions not mapped: %+v", p.Questions)
	}
	if err := p.Questions[0].Validate(); err != nil {
		t.Fatalf("mapped question must validate: %v", err)
	}
}
