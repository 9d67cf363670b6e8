package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "github.com/guipadovan/library-manager/internals/features/library/users/dto"
	model "github.com/guipadovan/library-manager/internals/features/library/users/model"
	service "github.com/guipadovan/library-manager/internals/features/library/users/service"
	"github.com/guipadovan/library-manager/internals/helpers/apperror"
	"github.com/guipadovan/library-manager/internals/helpers/dbtime"
)

type repoMock struct {
	findFn   func(ctx context.Context, id int64) (*model.UserModel, error)
	saveFn   func(ctx context.Context, m *model.UserModel) error
	deleteFn func(ctx context.Context, id int64) (int64, error)
	listFn   func(ctx context.Context, offset, limit int) ([]model.UserModel, int64, error)
}

func (m *repoMock) FindByID(ctx context.Context, id int64) (*model.UserModel, error) {
	return m.findFn(ctx, id)
}
func (m *repoMock) Save(ctx context.Context, u *model.UserModel) error { return m.saveFn(ctx, u) }
func (m *repoMock) DeleteByID(ctx context.Context, id int64) (int64, error) {
	return m.deleteFn(ctx, id)
}
func (m *repoMock) List(ctx context.Context, offset, limit int) ([]model.UserModel, int64, error) {
	return m.listFn(ctx, offset, limit)
}

func fixClock(t *testing.T) {
	t.Helper()
	orig := dbtime.Now
	dbtime.Now = func() time.Time { return time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { dbtime.Now = orig })
}

func validUser() dto.UserRequest {
	return dto.UserRequest{
		Name:             "Ana Souza",
		Email:            "ana@example.com",
		RegistrationDate: "2024-05-10",
		Phone:            "(11) 91234-5678",
	}
}

func Test_CreateUser_Success(t *testing.T) {
	// setup
	fixClock(t)
	s := service.NewUserService(&repoMock{
		saveFn: func(ctx context.Context, m *model.UserModel) error {
			m.UsersID = 7
			return nil
		},
	})

	// act
	got, err := s.CreateUser(context.Background(), validUser())

	// assert
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UsersID)
	assert.Equal(t, "(11) 91234-5678", got.UsersPhone)
}

func Test_CreateUser_InvalidFields(t *testing.T) {
	// setup
	fixClock(t)
	s := service.NewUserService(&repoMock{})
	req := dto.UserRequest{
		Name:             "  ",
		Email:            "not-an-email",
		RegistrationDate: "2024-05-11",
		Phone:            "11912345678",
	}

	// act
	_, err := s.CreateUser(context.Background(), req)

	// assert
	var ve *apperror.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, map[string]string{
		"name":             "must not be blank",
		"email":            "must be a well-formed email address",
		"registrationDate": "must be a date in the past or in the present",
		"phone":            "must match (DD) DDDD-DDDD or (DD) DDDDD-DDDD",
	}, ve.Fields)
}

func Test_CreateUser_AcceptsLandlinePhone(t *testing.T) {
	fixClock(t)
	req := validUser()
	req.Phone = "(21) 3456-7890"
	s := service.NewUserService(&repoMock{saveFn: func(ctx context.Context, m *model.UserModel) error { return nil }})

	_, err := s.CreateUser(context.Background(), req)

	assert.NoError(t, err)
}

func Test_UpdateUser_NotFound(t *testing.T) {
	fixClock(t)
	s := service.NewUserService(&repoMock{
		findFn: func(ctx context.Context, id int64) (*model.UserModel, error) { return nil, nil },
	})

	_, err := s.UpdateUser(context.Background(), 4, validUser())

	assert.EqualError(t, err, "User with id 4 not found.")
}

func Test_DeleteUser_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	s := service.NewUserService(&repoMock{
		deleteFn: func(ctx context.Context, id int64) (int64, error) { return 0, boom },
	})

	ok, err := s.DeleteUser(context.Background(), 1)

	assert.ErrorIs(t, err, boom)
	assert.False(t, ok)
}
