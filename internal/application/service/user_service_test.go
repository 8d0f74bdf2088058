package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/structurachem/scpl-api/internal/domain/entity"
	"github.com/structurachem/scpl-api/internal/domain/enum"
	"github.com/structurachem/scpl-api/pkg/apperror"
)

func TestCreateUserGeneratesEmployeeNo(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.users.CreateUser(ctx, adminActor, &CreateUserInput{
		Name:     "Bilal Khan",
		Email:    "bilal@structurachem.example",
		Password: "s3cret-pass",
		Role:     "Sales",
	})
	require.NoError(t, err)

	assert.Equal(t, "SCPL-EMP-001", user.EmployeeNo)
	assert.Equal(t, enum.UserRoleSales, user.Role)
	assert.NotEqual(t, "s3cret-pass", user.Password, "password must be stored hashed")

	second, err := env.users.CreateUser(ctx, adminActor, &CreateUserInput{
		Name:     "Sana Ahmed",
		Email:    "sana@structurachem.example",
		Password: "s3cret-pass",
		Role:     "Commercial",
	})
	require.NoError(t, err)
	assert.Equal(t, "SCPL-EMP-002", second.EmployeeNo)
}

func TestCreateUserUnknownRoleFallsBackToViewer(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.users.CreateUser(context.Background(), adminActor, &CreateUserInput{
		Name:     "Temp User",
		Email:    "temp@structurachem.example",
		Password: "s3cret-pass",
		Role:     "Superuser",
	})
	require.NoError(t, err)
	assert.Equal(t, enum.UserRoleViewer, user.Role)
}

func TestUserManagementIsAdminOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.users.ListUsers(ctx, salesActor)
	assert.Equal(t, 403, apperror.GetAppError(err).Code)

	_, err = env.users.CreateUser(ctx, salesActor, &CreateUserInput{
		Name:     "X",
		Email:    "x@structurachem.example",
		Password: "s3cret-pass",
	})
	assert.Equal(t, 403, apperror.GetAppError(err).Code)
}

func TestSeededAdminCannotBeRemovedOrDemoted(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seeded := &entity.User{
		EmployeeNo: "SCPL-EMP-000",
		Name:       "Seeded Admin",
		Email:      "admin@structurachem.example",
		Password:   "hashed",
		Role:       enum.UserRoleAdmin,
		Seeded:     true,
	}
	require.NoError(t, env.db.Create(seeded).Error)

	err := env.users.DeleteUser(ctx, adminActor, seeded.ID)
	require.Error(t, err)
	assert.Equal(t, 403, apperror.GetAppError(err).Code)

	viewer := "Viewer"
	_, err = env.users.UpdateUser(ctx, adminActor, seeded.ID, &UpdateUserInput{Role: &viewer})
	require.Error(t, err)
}

func TestDeleteOwnAccountIsRejected(t *testing.T) {
	env := newTestEnv(t)

	err := env.users.DeleteUser(context.Background(), adminActor, adminActor.ID)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}
