package request

import (
	"strings"

	"pesquisa_pbr/internal/domain/entities"
)

type UserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Password string `json:"password"`
}

func (r UserRequest) ToEntity() entities.User {
	return entities.User{
		Name:     strings.TrimSpace(r.Name),
		Email:    strings.TrimSpace(r.Email),
		Role:     entities.UserRole(r.Role),
		Password: r.Password,
	}
}

type UserRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

func (r UserRoleRequest) ResolveRole() entities.UserRole {
	return entities.UserRole(strings.TrimSpace(r.Role))
}
