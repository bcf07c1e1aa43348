package services

import (
	"context"

	"github.com/learntech/courseplanner/internal/app/models"
	"github.com/learntech/courseplanner/internal/app/repositories"
)

// UserStore is the persistence used by UserService
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetUserByUID(ctx context.Context, uid string) (*models.User, error)
	List(ctx context.Context, filter repositories.UserFilter, opts repositories.ListOptions) ([]*models.User, int64, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, uid string) error
}

// RoleStore is the persistence used by RoleService
type RoleStore interface {
	GetByID(ctx context.Context, id int64) (*models.Role, error)
	List(ctx context.Context, opts repositories.ListOptions) ([]*models.Role, int64, error)
}

// UserService defines the interface for user administration
type UserService interface {
	ListUsers(ctx context.Context, filter repositories.UserFilter, opts repositories.ListOptions) ([]*models.User, int64, error)
	GetUserByUID(ctx context.Context, uid string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, uid string) error
}

// RoleService defines the interface for role lookups
type RoleService interface {
	ListRoles(ctx context.Context, opts repositories.ListOptions) ([]*models.Role, int64, error)
	GetRoleByID(ctx context.Context, id int64) (*models.Role, error)
}

type userServiceImpl struct {
	users UserStore
}

// NewUserService creates a new user service instance
func NewUserService(users UserStore) UserService {
	return &userServiceImpl{users: users}
}

func validateUser(user *models.User) error {
	if err := requireText(user.UID, "uid"); err != nil {
		return err
	}
	if err := validateEmail(user.Email); err != nil {
		return err
	}
	if err := validateName(user.DisplayName, "displayName", false); err != nil {
		return err
	}
	return validateID(user.RoleID, "roleId")
}

func (s *userServiceImpl) ListUsers(ctx context.Context, filter repositories.UserFilter, opts repositories.ListOptions) ([]*models.User, int64, error) {
	return s.users.List(ctx, filter, opts)
}

func (s *userServiceImpl) GetUserByUID(ctx context.Context, uid string) (*models.User, error) {
	return s.users.GetUserByUID(ctx, uid)
}

func (s *userServiceImpl) CreateUser(ctx context.Context, user *models.User) error {
	if err := validateUser(user); err != nil {
		return err
	}
	return s.users.Create(ctx, user)
}

func (s *userServiceImpl) UpdateUser(ctx context.Context, user *models.User) error {
	if err := validateUser(user); err != nil {
		return err
	}
	return s.users.Update(ctx, user)
}

func (s *userServiceImpl) DeleteUser(ctx context.Context, uid string) error {
	return s.users.Delete(ctx, uid)
}

type roleServiceImpl struct {
	roles RoleStore
}

// NewRoleService creates a new role service instance
func NewRoleService(roles RoleStore) RoleService {
	return &roleServiceImpl{roles: roles}
}

func (s *roleServiceImpl) ListRoles(ctx context.Context, opts repositories.ListOptions) ([]*models.Role, int64, error) {
	return s.roles.List(ctx, opts)
}

func (s *roleServiceImpl) GetRoleByID(ctx context.Context, id int64) (*models.Role, error) {
	return s.roles.GetByID(ctx, id)
}
