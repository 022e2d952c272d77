package user_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MrJamesThe3rd/mikropanel/internal/user"
	"github.com/MrJamesThe3rd/mikropanel/internal/validation"
)

var fixedNow = time.Date(2025, 4, 5, 9, 0, 0, 0, time.UTC)

func newService(repo user.Repository) *user.Service {
	return user.NewService(repo).WithCost(bcrypt.MinCost).WithClock(func() time.Time { return fixedNow })
}

func hashOf(t *testing.T, password string) string {
	t.Helper()

	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return string(h)
}

func TestRole_Valid(t *testing.T) {
	for _, r := range []user.Role{user.RoleOwner, user.RoleAdmin, user.RoleTech, user.RoleShipping, user.RoleViewer} {
		assert.True(t, r.Valid(), r)
	}

	assert.False(t, user.Role("root").Valid())
	assert.False(t, user.Role("").Valid())
}

func TestService_Authenticate(t *testing.T) {
	id := uuid.New()
	hash := hashOf(t, "secreto")

	type args struct {
		username string
		password string
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(repo *user.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{username: "  Admin ", password: "secreto"},
			setupMock: func(repo *user.MockRepository) {
				repo.EXPECT().GetByUsername(gomock.Any(), "admin").
					Return(&user.User{ID: id, Username: "admin", PasswordHash: hash, Role: user.RoleAdmin, Active: true, LoginAttempts: 2}, nil)
				repo.EXPECT().RecordLogin(gomock.Any(), id, fixedNow).Return(nil)
			},
		},
		{
			name: "UnknownUser",
			args: args{username: "ghost", password: "secreto"},
			setupMock: func(repo *user.MockRepository) {
				repo.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, user.ErrNotFound)
			},
			wantErr: user.ErrInvalidCredentials,
		},
		{
			name: "InactiveUser",
			args: args{username: "admin", password: "secreto"},
			setupMock: func(repo *user.MockRepository) {
				repo.EXPECT().GetByUsername(gomock.Any(), "admin").
					Return(&user.User{ID: id, Username: "admin", PasswordHash: hash, Active: false}, nil)
			},
			wantErr: user.ErrInvalidCredentials,
		},
		{
			name: "WrongPasswordCountsAttempt",
			args: args{username: "admin", password: "nope"},
			setupMock: func(repo *user.MockRepository) {
				repo.EXPECT().GetByUsername(gomock.Any(), "admin").
					Return(&user.User{ID: id, Username: "admin", PasswordHash: hash, Active: true}, nil)
				repo.EXPECT().RecordFailedLogin(gomock.Any(), id).Return(nil)
			},
			wantErr: user.ErrInvalidCredentials,
		},
		{
			name: "RepositoryError",
			args: args{username: "admin", password: "secreto"},
			setupMock: func(repo *user.MockRepository) {
				repo.EXPECT().GetByUsername(gomock.Any(), "admin").Return(nil, errors.New("db down"))
			},
			wantErr: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := user.NewMockRepository(ctrl)
			tt.setupMock(repo)

			u, err := newService(repo).Authenticate(context.Background(), tt.args.username, tt.args.password)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
				assert.Nil(t, u)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, id, u.ID)
			assert.Equal(t, 0, u.LoginAttempts)
			require.NotNil(t, u.LastLogin)
			assert.Equal(t, fixedNow, *u.LastLogin)
		})
	}
}

func TestService_Create(t *testing.T) {
	type testCase struct {
		name       string
		params     user.CreateParams
		setupMock  func(repo *user.MockRepository)
		wantFields []string
		wantErr    error
	}

	tests := []testCase{
		{
			name:   "HashesAndNormalizes",
			params: user.CreateParams{Username: " Pedro ", Password: "1234", Role: user.RoleTech},
			setupMock: func(repo *user.MockRepository) {
				repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *user.User) error {
					assert.Equal(t, "pedro", u.Username)
					assert.Equal(t, user.RoleTech, u.Role)
					assert.True(t, u.Active)
					assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("1234")))

					u.ID = uuid.New()

					return nil
				})
			},
		},
		{
			name:       "InvalidInput",
			params:     user.CreateParams{Username: " ", Password: "12", Role: "root"},
			setupMock:  func(repo *user.MockRepository) {},
			wantFields: []string{"password", "role", "username"},
		},
		{
			name:   "Duplicate",
			params: user.CreateParams{Username: "ana", Password: "1234", Role: user.RoleViewer},
			setupMock: func(repo *user.MockRepository) {
				repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(user.ErrDuplicate)
			},
			wantErr: user.ErrDuplicate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := user.NewMockRepository(ctrl)
			tt.setupMock(repo)

			u, err := newService(repo).Create(context.Background(), tt.params)

			switch {
			case tt.wantFields != nil:
				var verr *validation.Error
				require.ErrorAs(t, err, &verr)

				for _, f := range tt.wantFields {
					assert.Contains(t, verr.Fields, f)
				}
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				require.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, u.ID)
			}
		})
	}
}

func TestService_Update(t *testing.T) {
	id := uuid.New()

	t.Run("ChangesRoleAndActive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := user.NewMockRepository(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), id).Return(&user.User{ID: id, Role: user.RoleViewer, Active: true}, nil)
		repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *user.User) error {
			assert.Equal(t, user.RoleAdmin, u.Role)
			assert.False(t, u.Active)

			return nil
		})

		u, err := newService(repo).Update(context.Background(), id, user.UpdateParams{
			Role:   new(user.RoleAdmin),
			Active: new(false),
		})
		require.NoError(t, err)
		assert.Equal(t, user.RoleAdmin, u.Role)
	})

	t.Run("RejectsUnknownRole", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := user.NewMockRepository(ctrl)

		_, err := newService(repo).Update(context.Background(), id, user.UpdateParams{Role: new(user.Role("root"))})
		assert.ErrorIs(t, err, validation.ErrInvalid)
	})

	t.Run("NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := user.NewMockRepository(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), id).Return(nil, user.ErrNotFound)

		_, err := newService(repo).Update(context.Background(), id, user.UpdateParams{Active: new(true)})
		assert.ErrorIs(t, err, user.ErrNotFound)
	})
}

func TestService_ChangePassword(t *testing.T) {
	id := uuid.New()
	hash := hashOf(t, "vieja")

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := user.NewMockRepository(ctrl)

		repo.EXPECT().GetByUsername(gomock.Any(), "ana").
			Return(&user.User{ID: id, Username: "ana", PasswordHash: hash, Active: true}, nil)
		repo.EXPECT().RecordLogin(gomock.Any(), id, fixedNow).Return(nil)
		repo.EXPECT().SetPassword(gomock.Any(), id, gomock.Any()).DoAndReturn(func(_ context.Context, _ uuid.UUID, h string) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(h), []byte("nueva")))
			return nil
		})

		require.NoError(t, newService(repo).ChangePassword(context.Background(), "ana", "vieja", "nueva"))
	})

	t.Run("TooShort", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := user.NewMockRepository(ctrl)

		err := newService(repo).ChangePassword(context.Background(), "ana", "vieja", "abc")
		assert.ErrorIs(t, err, validation.ErrInvalid)
	})

	t.Run("WrongCurrent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := user.NewMockRepository(ctrl)

		repo.EXPECT().GetByUsername(gomock.Any(), "ana").
			Return(&user.User{ID: id, Username: "ana", PasswordHash: hash, Active: true}, nil)
		repo.EXPECT().RecordFailedLogin(gomock.Any(), id).Return(nil)

		err := newService(repo).ChangePassword(context.Background(), "ana", "otra", "nueva")
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})
}

func TestService_EnsureBootstrap(t *testing.T) {
	type testCase struct {
		name      string
		username  string
		setupMock func(repo *user.MockRepository)
		want      bool
	}

	tests := []testCase{
		{
			name:     "CreatesOwnerOnEmptyTable",
			username: "Dueño",
			setupMock: func(repo *user.MockRepository) {
				repo.EXPECT().CountUsers(gomock.Any()).Return(0, nil)
				repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *user.User) error {
					assert.Equal(t, user.RoleOwner, u.Role)
					assert.Equal(t, "dueño", u.Username)

					return nil
				})
			},
			want: true,
		},
		{
			name:     "SkipsWhenUsersExist",
			username: "owner",
			setupMock: func(repo *user.MockRepository) {
				repo.EXPECT().CountUsers(gomock.Any()).Return(3, nil)
			},
		},
		{
			name:      "SkipsWithoutCredentials",
			username:  "",
			setupMock: func(repo *user.MockRepository) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := user.NewMockRepository(ctrl)
			tt.setupMock(repo)

			created, err := newService(repo).EnsureBootstrap(context.Background(), tt.username, "clave")
			require.NoError(t, err)
			assert.Equal(t, tt.want, created)
		})
	}
}
