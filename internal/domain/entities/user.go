package entities

import (
	"strings"
	"time"
)

// UserRole identifies what a user is allowed to see and do.
//
// Domain notes:
//   - ADMINISTRADOR_SISTEMA manages users and everything else.
//   - GERENTE_PESQUISA and COORDENADOR_CAMPO run projects from the office.
//   - PESQUISADOR_CAMPO only works the field collection flow.
type UserRole string

const (
	RoleAdministradorSistema UserRole = "ADMINISTRADOR_SISTEMA"
	RoleGerentePesquisa      UserRole = "GERENTE_PESQUISA"
	RoleCoordenadorCampo     UserRole = "COORDENADOR_CAMPO"
	RolePesquisadorCampo     UserRole = "PESQUISADOR_CAMPO"
)

var userRoleLabels = map[UserRole]string{
	RoleAdministradorSistema: "Administrador do Sistema",
	RoleGerentePesquisa:      "Gerente de Pesquisa",
	RoleCoordenadorCampo:     "Coordenador de Campo",
	RolePesquisadorCampo:     "Pesquisador de Campo",
}

func (r UserRole) Valid() bool {
	_, ok := userRoleLabels[r]
	return ok
}

func (r UserRole) Label() string {
	if label, ok := userRoleLabels[r]; ok {
		return label
	}
	return "Desconhecido"
}

// LandingRoute is the SPA route a user of this role is sent to after login.
func (r UserRole) LandingRoute() string {
	if r == RolePesquisadorCampo {
		return "/map"
	}
	return "/dashboard"
}

// RootAdminEmail identifies the distinguished system-administrator account.
// Its email and role can never change and the account cannot be deleted.
const RootAdminEmail = "admin@pbr.com"

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         UserRole  `json:"role"`
	Password     string    `json:"password,omitempty"`
	CreationDate time.Time `json:"creationDate"`
}

// IsRootAdmin reports whether u is the protected administrator account.
// Emails compare case-insensitively everywhere in this domain.
func (u User) IsRootAdmin() bool {
	return EqualEmail(u.Email, RootAdminEmail)
}

// EqualEmail compares two email addresses case-insensitively.
func EqualEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
