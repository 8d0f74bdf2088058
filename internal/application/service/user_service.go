package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/structurachem/scpl-api/internal/domain/entity"
	"github.com/structurachem/scpl-api/internal/domain/enum"
	"github.com/structurachem/scpl-api/internal/domain/repository"
	"github.com/structurachem/scpl-api/pkg/apperror"
	"github.com/structurachem/scpl-api/pkg/utils"
)

// UserService handles operator account management. All mutations are
// admin only.
type UserService struct {
	userRepo repository.UserRepository
	settings *SettingsService
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, settings *SettingsService) *UserService {
	return &UserService{userRepo: userRepo, settings: settings}
}

// ListUsers returns all operator accounts
func (s *UserService) ListUsers(ctx context.Context, actor Actor) ([]entity.User, error) {
	if !actor.IsAdmin() {
		return nil, apperror.NewForbiddenError("only an admin can manage users")
	}
	return s.userRepo.List(ctx)
}

// CreateUserInput represents the create user input
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// CreateUser creates a new operator account with a generated employee
// number. Unknown role names fall back to Viewer.
func (s *UserService) CreateUser(ctx context.Context, actor Actor, input *CreateUserInput) (*entity.User, error) {
	if !actor.IsAdmin() {
		return nil, apperror.NewForbiddenError("only an admin can manage users")
	}
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" {
		return nil, apperror.NewBadRequestError("name and email are required")
	}
	if len(input.Password) < 8 {
		return nil, apperror.NewBadRequestError("password must be at least 8 characters")
	}

	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		EmployeeNo: utils.GenerateEmployeeNo(settings.CompanyShortName, int(count)+1),
		Name:       input.Name,
		Email:      input.Email,
		Password:   hashed,
		Role:       enum.ParseUserRole(input.Role),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUserInput represents the update user input
type UpdateUserInput struct {
	Name     *string
	Role     *string
	Password *string
}

// UpdateUser updates an operator account. The seeded administrator's
// role cannot be demoted; the system must always have an admin.
func (s *UserService) UpdateUser(ctx context.Context, actor Actor, id uuid.UUID, input *UpdateUserInput) (*entity.User, error) {
	if !actor.IsAdmin() {
		return nil, apperror.NewForbiddenError("only an admin can manage users")
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Role != nil {
		role := enum.ParseUserRole(*input.Role)
		if user.Seeded && !role.IsAdmin() {
			return nil, apperror.NewBadRequestError("the seeded administrator must remain an admin")
		}
		user.Role = role
	}
	if input.Password != nil {
		if len(*input.Password) < 8 {
			return nil, apperror.NewBadRequestError("password must be at least 8 characters")
		}
		hashed, err := utils.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes an operator account. The seeded administrator and
// the acting user cannot be removed.
func (s *UserService) DeleteUser(ctx context.Context, actor Actor, id uuid.UUID) error {
	if !actor.IsAdmin() {
		return apperror.NewForbiddenError("only an admin can manage users")
	}
	if id == actor.ID {
		return apperror.NewBadRequestError("you cannot delete your own account")
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}
	if user.Seeded {
		return apperror.NewForbiddenError("the seeded administrator account cannot be removed")
	}

	return s.userRepo.Delete(ctx, id)
}
