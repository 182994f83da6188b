package response

import (
	"time"

	"pesquisa_pbr/internal/domain/entities"
)

// UserResponse never carries the password, whatever the entity holds.
type UserResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	RoleLabel    string    `json:"roleLabel"`
	CreationDate time.Time `json:"creationDate"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         string(u.Role),
		RoleLabel:    u.Role.Label(),
		CreationDate: u.CreationDate,
	}
}

func FromUsers(users []entities.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = FromUser(u)
	}
	return out
}

// LoginResponse carries the signed token plus where the frontend should send
// this role after login.
type LoginResponse struct {
	Token        string       `json:"token"`
	User         UserResponse `json:"user"`
	LandingRoute string       `json:"landingRoute"`
}

func FromLogin(u entities.User, token string) LoginResponse {
	return LoginResponse{
		Token:        token,
		User:         FromUser(u),
		LandingRoute: u.Role.LandingRoute(),
	}
}
