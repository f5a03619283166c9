package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/clicker/internal/logger"
	"github.com/sbilibin2017/clicker/internal/models"
	"github.com/sbilibin2017/clicker/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username already exists")
	ErrUserDoesNotExist   = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidInput       = errors.New("invalid input")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, username string, passwordHash string, isAdmin bool) (int64, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, user *models.UserDB) (string, error)
}

// maxPasswordBytes is the longest password bcrypt accepts.
const maxPasswordBytes = 72

// Credentials is the username/password pair accepted by every front-end.
type Credentials struct {
	Username string `validate:"required,min=3,max=32,alphanumunicode"`
	Password string `validate:"required,min=4,max=72"`
}

// AuthService handles registration and login.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	jwt      JWTGenerator
	events   *EventPublisher
	recorder GameRecorder
	validate *validator.Validate
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	jwt JWTGenerator,
	events *EventPublisher,
	recorder GameRecorder,
) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		jwt:      jwt,
		events:   events,
		recorder: recorderOrNop(recorder),
		validate: validator.New(),
	}
}

// Register creates a user with an empty save and returns its id.
func (svc *AuthService) Register(ctx context.Context, username, password string) (int64, error) {
	if err := svc.validate.Struct(Credentials{Username: username, Password: password}); err != nil {
		logger.Log.Infow("invalid registration input", "username", username, "err", err)
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if len(password) > maxPasswordBytes {
		logger.Log.Infow("password too long", "username", username, "bytes", len(password))
		return 0, fmt.Errorf("%w: password exceeds %d bytes", ErrInvalidInput, maxPasswordBytes)
	}

	_, err := svc.reader.GetByUsername(ctx, username)
	switch {
	case err == nil:
		logger.Log.Infow("user already exists", "username", username)
		return 0, ErrUserAlreadyExists
	case !errors.Is(err, repositories.ErrNotFound):
		logger.Log.Errorw("failed to check user exists", "err", err)
		return 0, err
	}

	userID, err := svc.create(ctx, username, password, false)
	if err != nil {
		return 0, err
	}

	svc.recorder.Registered()
	svc.events.Publish(ctx, newEvent(models.OperationRegister, userID, 0, 0))

	return userID, nil
}

// Authenticate checks the credentials and returns the matching user. Unknown
// usernames and wrong passwords are both reported as ErrInvalidCredentials.
func (svc *AuthService) Authenticate(ctx context.Context, username, password string) (*models.UserDB, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if errors.Is(err, repositories.ErrNotFound) {
		logger.Log.Infow("login for unknown user", "username", username)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "username", username)
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Login authenticates a user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}

	token, err := svc.jwt.Generate(ctx, user)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// EnsureAdmin creates the admin account when it is missing. An existing
// account is left untouched. It reports whether an account was created.
func (svc *AuthService) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	if username == "" {
		return false, nil
	}
	if password == "" {
		return false, fmt.Errorf("%w: admin password is empty", ErrInvalidInput)
	}

	_, err := svc.reader.GetByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		logger.Log.Errorw("failed to look up admin", "err", err)
		return false, err
	}

	if _, err := svc.create(ctx, username, password, true); err != nil {
		return false, err
	}
	logger.Log.Infow("admin account created", "username", username)

	return true, nil
}

func (svc *AuthService) create(ctx context.Context, username, password string, isAdmin bool) (int64, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return 0, err
	}

	userID, err := svc.writer.Create(ctx, username, string(hashedPassword), isAdmin)
	if errors.Is(err, repositories.ErrUserAlreadyExists) {
		logger.Log.Infow("user already exists", "username", username)
		return 0, ErrUserAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return 0, err
	}

	return userID, nil
}
