package entities

import "time"

// ProjectStatus tracks a research project through its lifecycle.
type ProjectStatus string

const (
	ProjectStatusPlanejamento ProjectStatus = "PLANEJAMENTO"
	ProjectStatusEmCampo      ProjectStatus = "EM_CAMPO"
	ProjectStatusAnalise      ProjectStatus = "ANALISE"
	ProjectStatusConcluido    ProjectStatus = "CONCLUIDO"
	ProjectStatusCancelado    ProjectStatus = "CANCELADO"
)

var projectStatusLabels = map[ProjectStatus]string{
	ProjectStatusPlanejamento: "Planejamento",
	ProjectStatusEmCampo:      "Em Campo",
	ProjectStatusAnalise:      "Em Análise",
	ProjectStatusConcluido:    "Concluído",
	ProjectStatusCancelado:    "Cancelado",
}

func (s ProjectStatus) Valid() bool {
	_, ok := projectStatusLabels[s]
	return ok
}

func (s ProjectStatus) Label() string {
	if label, ok := projectStatusLabels[s]; ok {
		return label
	}
	return "Desconhecido"
}

// QuotaTarget is a demographic target tracked per project, independent of
// area-based interview counting (e.g. "Faixa Etária 18-24": 300).
type QuotaTarget struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	TargetCount   int    `json:"targetCount"`
	AchievedCount int    `json:"achievedCount"`
}

// Project owns the questionnaire schema applied to every interview collected
// for it. Questions are ordered; that order is the order answers are emitted in.
type Project struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	Status         ProjectStatus `json:"status"`
	CreationDate   time.Time     `json:"creationDate"`
	StartDate      *time.Time    `json:"startDate,omitempty"`
	EndDate        *time.Time    `json:"endDate,omitempty"`
	TargetAudience string        `json:"targetAudience,omitempty"`
	Quotas         []QuotaTarget `json:"quotas"`
	Questions      []Question    `json:"questions"`
}

// QuotaProgress returns achieved/target sums over the project's quotas.
func (p Project) QuotaProgress() (achieved, target int) {
	for _, q := range p.Quotas {
		achieved += q.AchievedCount
		target += q.TargetCount
	}
	return achieved, target
}
