package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/clicker/internal/models"
	"github.com/sbilibin2017/clicker/internal/repositories"
	"github.com/sbilibin2017/clicker/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, nil, nil)

	tests := []struct {
		name         string
		username     string
		password     string
		existingUser *models.UserDB
		readerErr    error
		callWriter   bool
		writerID     int64
		writerErr    error
		wantID       int64
		wantErr      error
	}{
		{
			name:       "successful registration",
			username:   "alice",
			password:   "pass123",
			readerErr:  repositories.ErrNotFound,
			callWriter: true,
			writerID:   7,
			wantID:     7,
		},
		{
			name:         "user already exists",
			username:     "bob",
			password:     "pass123",
			existingUser: &models.UserDB{UserID: 1, Username: "bob"},
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name:       "duplicate detected on insert",
			username:   "dave",
			password:   "pass123",
			readerErr:  repositories.ErrNotFound,
			callWriter: true,
			writerErr:  repositories.ErrUserAlreadyExists,
			wantErr:    services.ErrUserAlreadyExists,
		},
		{
			name:      "reader error",
			username:  "eve",
			password:  "pass123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:       "writer error",
			username:   "carol",
			password:   "pass123",
			readerErr:  repositories.ErrNotFound,
			callWriter: true,
			writerErr:  errors.New("save error"),
			wantErr:    errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.existingUser, tt.readerErr)

			if tt.callWriter {
				mockWriter.EXPECT().
					Create(gomock.Any(), tt.username, gomock.Any(), false).
					DoAndReturn(func(_ context.Context, _ string, hash string, _ bool) (int64, error) {
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(tt.password)))
						return tt.writerID, tt.writerErr
					})
			}

			id, err := svc.Register(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Zero(t, id)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestAuthService_Register_InvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := services.NewAuthService(
		services.NewMockUserReader(ctrl),
		services.NewMockUserWriter(ctrl),
		services.NewMockJWTGenerator(ctrl),
		nil,
		nil,
	)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "empty username", username: "", password: "pass123"},
		{name: "short username", username: "ab", password: "pass123"},
		{name: "username with spaces", username: "al ice", password: "pass123"},
		{name: "empty password", username: "alice", password: ""},
		{name: "short password", username: "alice", password: "abc"},
		{name: "password over 72 characters", username: "alice", password: strings.Repeat("a", 73)},
		{name: "multibyte password over 72 bytes", username: "alice", password: strings.Repeat("é", 40)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.username, tt.password)
			assert.ErrorIs(t, err, services.ErrInvalidInput)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, nil, nil)

	password := "secret"
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name      string
		username  string
		user      *models.UserDB
		readerErr error
		jwtErr    error
		wantErr   error
		expectJWT string
		loginPass string
	}{
		{
			name:      "successful login",
			username:  "alice",
			user:      &models.UserDB{UserID: 1, Username: "alice", PasswordHash: string(hashed)},
			expectJWT: "token123",
			loginPass: password,
		},
		{
			name:      "user does not exist",
			username:  "bob",
			readerErr: repositories.ErrNotFound,
			wantErr:   services.ErrInvalidCredentials,
			loginPass: password,
		},
		{
			name:      "invalid password",
			username:  "carol",
			user:      &models.UserDB{UserID: 2, Username: "carol", PasswordHash: string(hashed)},
			wantErr:   services.ErrInvalidCredentials,
			loginPass: "wrongpass",
		},
		{
			name:      "reader error",
			username:  "eve",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
			loginPass: password,
		},
		{
			name:      "JWT generation error",
			username:  "dan",
			user:      &models.UserDB{UserID: 3, Username: "dan", PasswordHash: string(hashed)},
			jwtErr:    errors.New("jwt error"),
			wantErr:   errors.New("jwt error"),
			loginPass: password,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.readerErr == nil && tt.loginPass == password {
				mockJWT.EXPECT().
					Generate(gomock.Any(), tt.user).
					Return(tt.expectJWT, tt.jwtErr)
			}

			token, err := svc.Login(context.Background(), tt.username, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectJWT, token)
			}
		})
	}
}

func TestCredentials_DocumentedExampleIsValid(t *testing.T) {
	err := validator.New().Struct(services.Credentials{Username: "johndoe", Password: "secret123"})
	assert.NoError(t, err)

	err = validator.New().Struct(services.Credentials{Username: "john_doe", Password: "secret123"})
	assert.Error(t, err)
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, services.NewMockJWTGenerator(ctrl), nil, nil)
	ctx := context.Background()

	t.Run("disabled without username", func(t *testing.T) {
		created, err := svc.EnsureAdmin(ctx, "", "")
		assert.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("empty password", func(t *testing.T) {
		_, err := svc.EnsureAdmin(ctx, "admin", "")
		assert.ErrorIs(t, err, services.ErrInvalidInput)
	})

	t.Run("password over 72 bytes", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(ctx, "admin").Return(nil, repositories.ErrNotFound)

		created, err := svc.EnsureAdmin(ctx, "admin", strings.Repeat("é", 40))
		assert.ErrorIs(t, err, services.ErrInvalidInput)
		assert.False(t, created)
	})

	t.Run("existing account untouched", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(ctx, "admin").Return(&models.UserDB{UserID: 1, Username: "admin"}, nil)

		created, err := svc.EnsureAdmin(ctx, "admin", "adminpass")
		assert.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("creates admin", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(ctx, "admin").Return(nil, repositories.ErrNotFound)
		mockWriter.EXPECT().Create(ctx, "admin", gomock.Any(), true).Return(int64(1), nil)

		created, err := svc.EnsureAdmin(ctx, "admin", "adminpass")
		assert.NoError(t, err)
		assert.True(t, created)
	})
}
