package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"pesquisa_pbr/internal/domain/entities"
	"pesquisa_pbr/internal/store"
	"pesquisa_pbr/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidUserID    = errors.New("invalid user id")
	ErrInvalidUserName  = errors.New("user name is required")
	ErrInvalidUserEmail = errors.New("user email is required")
	ErrInvalidUserRole  = errors.New("invalid user role")
)

type IUserUseCase interface {
	List(ctx context.Context) ([]entities.User, error)
	Get(ctx context.Context, id string) (entities.User, error)
	Create(ctx context.Context, u entities.User) (entities.User, error)
	Update(ctx context.Context, u entities.User) (entities.User, error)
	Delete(ctx context.Context, id string) error
	UpdateRole(ctx context.Context, id string, role entities.UserRole) (entities.User, error)
}

type UserUseCase struct {
	store interfaces.IStateStore
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(st interfaces.IStateStore) *UserUseCase {
	return &UserUseCase{store: st}
}

func (u *UserUseCase) List(ctx context.Context) ([]entities.User, error) {
	return u.store.State().Users, nil
}

func (u *UserUseCase) Get(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}
	user, ok := u.store.State().UserByID(id)
	if !ok {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

func (u *UserUseCase) Create(ctx context.Context, user entities.User) (entities.User, error) {
	if err := validateUserInput(&user); err != nil {
		return entities.User{}, err
	}

	user.ID = uuid.NewString()
	user.CreationDate = time.Now().UTC()

	if err := u.store.Dispatch(store.AddUser{User: user}); err != nil {
		return entities.User{}, err
	}
	return user, nil
}

func (u *UserUseCase) Update(ctx context.Context, user entities.User) (entities.User, error) {
	user.ID = strings.TrimSpace(user.ID)
	if user.ID == "" {
		return entities.User{}, ErrInvalidUserID
	}
	current, ok := u.store.State().UserByID(user.ID)
	if !ok {
		return entities.User{}, ErrUserNotFound
	}
	if err := validateUserInput(&user); err != nil {
		return entities.User{}, err
	}
	user.CreationDate = current.CreationDate
	if user.Password == "" {
		user.Password = current.Password
	}

	if err := u.store.Dispatch(store.UpdateUser{User: user}); err != nil {
		return entities.User{}, err
	}
	return user, nil
}

func (u *UserUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidUserID
	}
	if _, ok := u.store.State().UserByID(id); !ok {
		return ErrUserNotFound
	}
	return u.store.Dispatch(store.DeleteUser{UserID: id})
}

func (u *UserUseCase) UpdateRole(ctx context.Context, id string, role entities.UserRole) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}
	if !role.Valid() {
		return entities.User{}, ErrInvalidUserRole
	}
	if _, ok := u.store.State().UserByID(id); !ok {
		return entities.User{}, ErrUserNotFound
	}

	if err := u.store.Dispatch(store.UpdateUserRole{UserID: id, Role: role}); err != nil {
		return entities.User{}, err
	}
	updated, _ := u.store.State().UserByID(id)
	return updated, nil
}

func validateUserInput(user *entities.User) error {
	user.Name = strings.TrimSpace(user.Name)
	user.Email = strings.TrimSpace(user.Email)
	if user.Name == "" {
		return ErrInvalidUserName
	}
	if user.Email == "" {
		return ErrInvalidUserEmail
	}
	if !user.Role.Valid() {
		return ErrInvalidUserRole
	}
	return nil
}
