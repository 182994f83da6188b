package seed

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"pesquisa_pbr/internal/domain/entities"
	"pesquisa_pbr/internal/store"
)

// Load reads an initial state tree from a JSON seed file. The file uses the
// same JSON shape the API serves (camelCase entity fields).
func Load(path string) (store.State, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return store.State{}, err
	}
	var state store.State
	if err := json.Unmarshal(raw, &state); err != nil {
		return store.State{}, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return state, nil
}

func intPtr(v int) *int { return &v }

func daysAgo(days int) time.Time {
	return time.Now().UTC().AddDate(0, 0, -days)
}

// Default returns the built-in mock dataset used when no seed file is
// configured: the root administrator plus one account per role, three
// projects with their questionnaires, and three assigned collection areas.
func Default() store.State {
	now := time.Now().UTC()
	fieldStart := daysAgo(20)

	questionsEleitoral := []entities.Question{
		{ID: "q_ele_1", Text: "Se a eleição para prefeito fosse hoje, em qual candidato você votaria (Estimulada)?", Type: entities.QuestionTypeSingleChoice, Options: []string{"Candidato Alfa", "Candidato Beta", "Candidato Gama", "Branco/Nulo"}},
		{ID: "q_ele_2", Text: "Em qual candidato você NÃO votaria de jeito nenhum (Rejeição)?", Type: entities.QuestionTypeMultipleChoice, Options: []string{"Candidato Alfa", "Candidato Beta", "Candidato Gama"}},
		{ID: "q_ele_3", Text: "Como você avalia a atual gestão municipal?", Type: entities.QuestionTypeScale, ScaleMin: intPtr(1), ScaleMax: intPtr(5), ScaleLabels: []string{"Péssima", "Ruim", "Regular", "Boa", "Ótima"}},
		{ID: "q_ele_4", Text: "Qual sua faixa etária?", Type: entities.QuestionTypeSingleChoice, Options: []string{"16-24 anos", "25-34 anos", "35-44 anos", "45-59 anos", "60+ anos"}},
		{ID: "q_ele_5", Text: "Qual seu bairro de residência?", Type: entities.QuestionTypeText},
	}

	questionsSatisfacao := []entities.Question{
		{ID: "q_sat_1", Text: "Em uma escala de 0 a 10, qual a probabilidade de você recomendar nossa empresa a um amigo ou familiar?", Type: entities.QuestionTypeNumeric, ScaleMin: intPtr(0), ScaleMax: intPtr(10)},
		{ID: "q_sat_2", Text: "Qual seu nível de satisfação com a qualidade de nossos produtos?", Type: entities.QuestionTypeScale, ScaleMin: intPtr(1), ScaleMax: intPtr(5), ScaleLabels: []string{"Muito Insatisfeito", "Insatisfeito", "Neutro", "Satisfeito", "Muito Satisfeito"}},
		{ID: "q_sat_3", Text: "Deixe um comentário ou sugestão:", Type: entities.QuestionTypeText},
	}

	questionsSustentabilidade := []entities.Question{
		{ID: "q_sus_1", Text: "Você se considera uma pessoa engajada com práticas sustentáveis?", Type: entities.QuestionTypeSingleChoice, Options: []string{"Sim", "Não", "Em partes"}},
		{ID: "q_sus_2", Text: "Quais práticas sustentáveis você adota no seu dia a dia? (Múltipla Escolha)", Type: entities.QuestionTypeMultipleChoice, Options: []string{"Separação de lixo reciclável", "Economia de água", "Economia de energia elétrica", "Uso de transporte público/bicicleta", "Não adoto práticas específicas"}},
	}

	return store.State{
		Users: []entities.User{
			{ID: "1", Name: "Admin PBR", Email: "admin@pbr.com", Role: entities.RoleAdministradorSistema, Password: "admin", CreationDate: now},
			{ID: "3", Name: "Beatriz Lima", Email: "beatriz.lima@example.com", Role: entities.RoleGerentePesquisa, CreationDate: daysAgo(5)},
			{ID: "4", Name: "Carlos Santos", Email: "carlos.santos@example.com", Role: entities.RoleCoordenadorCampo, CreationDate: daysAgo(10)},
			{ID: "auth-user-coordenador", Name: "Coordenador PBR", Email: "coordenador@pbr.com", Role: entities.RoleCoordenadorCampo, Password: "cord", CreationDate: now},
			{ID: "5", Name: "Diana Alves", Email: "diana.alves@example.com", Role: entities.RolePesquisadorCampo, CreationDate: daysAgo(2)},
			{ID: "auth-user-gerente", Name: "Gerente PBR", Email: "gerente@pbr.com", Role: entities.RoleGerentePesquisa, Password: "ger", CreationDate: now},
			{ID: "auth-user-pesquisador", Name: "Pesquisador de Campo A", Email: "pesquisador@pbr.com", Role: entities.RolePesquisadorCampo, Password: "123", CreationDate: now},
		},
		Projects: []entities.Project{
			{
				ID:             "proj1",
				Name:           "Pesquisa Eleitoral Nacional 2024",
				Description:    "Levantamento de intenção de voto para as eleições presidenciais.",
				Status:         entities.ProjectStatusEmCampo,
				CreationDate:   daysAgo(30),
				StartDate:      &fieldStart,
				TargetAudience: "Eleitores acima de 16 anos em todas as capitais.",
				Quotas: []entities.QuotaTarget{
					{ID: "q1-1", Name: "Região Sudeste", TargetCount: 1000, AchievedCount: 650},
					{ID: "q1-2", Name: "Faixa Etária 18-24", TargetCount: 300, AchievedCount: 150},
				},
				Questions: questionsEleitoral,
			},
			{
				ID:           "proj2",
				Name:         "Satisfação do Consumidor - Setor Varejista",
				Description:  "Avaliação da satisfação dos clientes de grandes redes varejistas.",
				Status:       entities.ProjectStatusPlanejamento,
				CreationDate: daysAgo(5),
				Quotas: []entities.QuotaTarget{
					{ID: "q2-1", Name: "Clientes Classe A/B", TargetCount: 500, AchievedCount: 0},
				},
				Questions: questionsSatisfacao,
			},
			{
				ID:           "proj3",
				Name:         "Opinião Pública sobre Sustentabilidade",
				Description:  "Pesquisa sobre a percepção da população acerca de práticas sustentáveis.",
				Status:       entities.ProjectStatusConcluido,
				CreationDate: daysAgo(90),
				Quotas: []entities.QuotaTarget{
					{ID: "q3-1", Name: "População Urbana", TargetCount: 1200, AchievedCount: 1200},
				},
				Questions: questionsSustentabilidade,
			},
		},
		SurveyAreas: []entities.SurveyAreaAssignment{
			{
				ID:   "area1",
				Name: "Setor Censitário Alpha (PROJ1)",
				Coordinates: []entities.LatLng{
					{-15.77, -47.93}, {-15.77, -47.91}, {-15.79, -47.91}, {-15.79, -47.93},
				},
				InterviewsTarget:       20,
				InterviewsCompleted:    10,
				Status:                 entities.SurveyAreaStatusEmAndamento,
				ProjectID:              "proj1",
				AssignedToResearcherID: "auth-user-pesquisador",
			},
			{
				ID:   "area2",
				Name: "Setor Censitário Beta (PROJ1)",
				Coordinates: []entities.LatLng{
					{-15.80, -47.90}, {-15.80, -47.88}, {-15.82, -47.88}, {-15.82, -47.90},
				},
				InterviewsTarget:       15,
				InterviewsCompleted:    5,
				Status:                 entities.SurveyAreaStatusPendente,
				ProjectID:              "proj1",
				AssignedToResearcherID: "auth-user-pesquisador",
			},
			{
				ID:   "area3",
				Name: "Região Comercial Central (PROJ2)",
				Coordinates: []entities.LatLng{
					{-15.785, -47.885}, {-15.785, -47.875}, {-15.795, -47.875}, {-15.795, -47.885},
				},
				InterviewsTarget:       50,
				InterviewsCompleted:    0,
				Status:                 entities.SurveyAreaStatusPendente,
				ProjectID:              "proj2",
				AssignedToResearcherID: "5",
			},
		},
		SurveyResponses: []entities.SurveyResponse{},
	}
}
