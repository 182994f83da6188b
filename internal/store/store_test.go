package store

import (
	"errors"
	"testing"
	"time"

	"pesquisa_pbr/internal/domain/entities"
)

func testState() State {
	return State{
		Projects: []entities.Project{
			{ID: "proj1", Name: "Pesquisa Eleitoral", Status: entities.ProjectStatusEmCampo},
		},
		Users: []entities.User{
			{ID: "1", Name: "Admin PBR", Email: "admin@pbr.com", Role: entities.RoleAdministradorSistema},
			{ID: "2", Name: "Diana Alves", Email: "diana@example.com", Role: entities.RolePesquisadorCampo},
		},
		SurveyAreas: []entities.SurveyAreaAssignment{
			{ID: "area1", Name: "Setor Alpha", InterviewsTarget: 3, InterviewsCompleted: 0, Status: entities.SurveyAreaStatusPendente, ProjectID: "proj1"},
			{ID: "area2", Name: "Setor Beta", InterviewsTarget: 5, InterviewsCompleted: 1, Status: entities.SurveyAreaStatusEmAndamento, ProjectID: "proj1"},
		},
	}
}

func TestDispatch_AddProjectPrepends(t *testing.T) {
	s := New(testState())
	if err := s.Dispatch(AddProject{Project: entities.Project{ID: "proj2", Name: "Satisfação"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	projects := s.State().Projects
	if len(projects) != 2 || projects[0].ID != "proj2" {
		t.Fatalf("expected proj2 first, got %+v", projects)
	}
}

func TestDispatch_AddUserRejectsDuplicateEmail(t *testing.T) {
	s := New(testState())
	before := s.State()

	err := s.Dispatch(AddUser{User: entities.User{ID: "9", Name: "Outro", Email: "DIANA@example.com"}})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	if len(s.State().Users) != len(before.Users) {
		t.Fatalf("state mutated on rejected transition")
	}
}

func TestDispatch_AddUserKeepsNameOrder(t *testing.T) {
	s := New(testState())
	if err := s.Dispatch(AddUser{User: entities.User{ID: "9", Name: "Carlos Santos", Email: "carlos@example.com"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	users := s.State().Users
	if users[0].Name != "Admin PBR" || users[1].Name != "Carlos Santos" || users[2].Name != "Diana Alves" {
		t.Fatalf("users not sorted by name: %+v", users)
	}
}

func TestDispatch_RootAdminProtection(t *testing.T) {
	t.Run("delete refused", func(t *testing.T) {
		s := New(testState())
		if err := s.Dispatch(DeleteUser{UserID: "1"}); !errors.Is(err, ErrRootAdminImmutable) {
			t.Fatalf("expected ErrRootAdminImmutable, got %v", err)
		}
	})

	t.Run("email change refused", func(t *testing.T) {
		s := New(testState())
		err := s.Dispatch(UpdateUser{User: entities.User{ID: "1", Name: "Admin PBR", Email: "other@pbr.com", Role: entities.RoleAdministradorSistema}})
		if !errors.Is(err, ErrRootAdminImmutable) {
			t.Fatalf("expected ErrRootAdminImmutable, got %v", err)
		}
	})

	t.Run("demotion refused", func(t *testing.T) {
		s := New(testState())
		err := s.Dispatch(UpdateUserRole{UserID: "1", Role: entities.RolePesquisadorCampo})
		if !errors.Is(err, ErrRootAdminImmutable) {
			t.Fatalf("expected ErrRootAdminImmutable, got %v", err)
		}
	})

	t.Run("other users unaffected", func(t *testing.T) {
		s := New(testState())
		if err := s.Dispatch(UpdateUserRole{UserID: "2", Role: entities.RoleCoordenadorCampo}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		u, _ := s.State().UserByID("2")
		if u.Role != entities.RoleCoordenadorCampo {
			t.Fatalf("role not updated: %+v", u)
		}
	})
}

func TestDispatch_CompleteInterview(t *testing.T) {
	t.Run("first interview moves area to em andamento", func(t *testing.T) {
		s := New(testState())
		if err := s.Dispatch(CompleteInterview{AreaID: "area1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		area, _ := s.State().AreaByID("area1")
		if area.InterviewsCompleted != 1 || area.Status != entities.SurveyAreaStatusEmAndamento {
			t.Fatalf("unexpected area state: %+v", area)
		}
	})

	t.Run("reaching target concludes area", func(t *testing.T) {
		s := New(testState())
		for i := 0; i < 3; i++ {
			if err := s.Dispatch(CompleteInterview{AreaID: "area1"}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		area, _ := s.State().AreaByID("area1")
		if area.InterviewsCompleted != 3 || area.Status != entities.SurveyAreaStatusConcluida {
			t.Fatalf("unexpected area state: %+v", area)
		}
	})

	t.Run("other areas untouched", func(t *testing.T) {
		s := New(testState())
		_ = s.Dispatch(CompleteInterview{AreaID: "area1"})
		other, _ := s.State().AreaByID("area2")
		if other.InterviewsCompleted != 1 || other.Status != entities.SurveyAreaStatusEmAndamento {
			t.Fatalf("area2 changed: %+v", other)
		}
	})

	t.Run("unknown area is a no-op", func(t *testing.T) {
		s := New(testState())
		before := s.State()
		if err := s.Dispatch(CompleteInterview{AreaID: "nope"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i, area := range s.State().SurveyAreas {
			prev := before.SurveyAreas[i]
			if area.InterviewsCompleted != prev.InterviewsCompleted || area.Status != prev.Status {
				t.Fatalf("area %d changed: %+v", i, area)
			}
		}
	})
}

func TestDispatch_SubmitInterviewIsOneTransition(t *testing.T) {
	s := New(testState())
	resp := entities.SurveyResponse{
		ID:             "resp-1",
		ProjectID:      "proj1",
		SurveyAreaID:   "area2",
		ResearcherID:   "2",
		CollectionDate: time.Now().UTC(),
	}
	if err := s.Dispatch(SubmitInterview{Response: resp, AreaID: "area2"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	state := s.State()
	if len(state.SurveyResponses) != 1 || state.SurveyResponses[0].ID != "resp-1" {
		t.Fatalf("response not prepended: %+v", state.SurveyResponses)
	}
	area, _ := state.AreaByID("area2")
	if area.InterviewsCompleted != 2 {
		t.Fatalf("area progress not advanced: %+v", area)
	}
}

func TestDispatch_AddSurveyResponsePrependsNewestFirst(t *testing.T) {
	s := New(testState())
	_ = s.Dispatch(AddSurveyResponse{Response: entities.SurveyResponse{ID: "resp-1"}})
	_ = s.Dispatch(AddSurveyResponse{Response: entities.SurveyResponse{ID: "resp-2"}})

	responses := s.State().SurveyResponses
	if responses[0].ID != "resp-2" || responses[1].ID != "resp-1" {
		t.Fatalf("unexpected order: %+v", responses)
	}
}

func TestDispatch_ProjectStatusAndDelete(t *testing.T) {
	s := New(testState())
	if err := s.Dispatch(UpdateProjectStatus{ProjectID: "proj1", Status: entities.ProjectStatusAnalise}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, _ := s.State().ProjectByID("proj1")
	if p.Status != entities.ProjectStatusAnalise {
		t.Fatalf("status not updated: %+v", p)
	}

	if err := s.Dispatch(DeleteProject{ProjectID: "proj1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.State().Projects) != 0 {
		t.Fatalf("project not deleted")
	}
}
