// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"unicode"
	"unicode/utf8"

	"busquei/internal/domain/entity"
	domainerrors "busquei/internal/domain/errors"
	"busquei/internal/domain/repository"
	"busquei/internal/domain/service"
	"busquei/internal/usecase"

	deliverycontext "busquei/internal/delivery/context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	minNameLength     = 2
	maxNameLength     = 100
	minPasswordLength = 6
	maxPasswordLength = 100
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	validate  *validator.Validate
	logger    *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		validate:  validator.New(),
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete registration process.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	name, err := srv.validateName(input.Name)
	if err != nil {
		return nil, err
	}

	email, err := srv.validateEmail(input.Email)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	if err := srv.validatePassword(input.Password); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	// bcrypt is CPU-bound; keep it outside the transaction.
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Name:     name,
		Email:    email,
		IsActive: true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		exists, existsErr := userRepo.ExistsByEmail(ctx, email)
		if existsErr != nil {
			return errors.Wrap(existsErr, "failed to check email existence")
		}
		if exists {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
		}

		// The existence check is optimistic; a concurrent registration may
		// still win the race and trip the unique constraint instead.
		if createErr := userRepo.Create(ctx, newUser, passwordHash); createErr != nil {
			if errors.Is(createErr, repository.ErrDuplicateEmail) {
				return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
			}

			return errors.Wrap(createErr, "failed to create user during registration")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login orchestrates the credential verification process. Unknown email,
// missing credential and wrong password all yield the same error, so a failed
// login never reveals whether the email is registered.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	email, err := srv.validateEmail(input.Email)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	passwordHash, err := srv.userRepo.GetPasswordHash(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load password hash")
	}

	if !srv.hasher.Check(input.Password, passwordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if !user.CanLogin() {
		srv.log(ctx).Warn("Login attempt on inactive account", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrAccountInactive, "login failed")
	}

	if srv.hasher.NeedsRehash(passwordHash) {
		// Surfaced for operators; the hash itself stays valid until the
		// work factor migration lands.
		srv.log(ctx).Warn("Password hash uses an outdated work factor", slog.Any("userID", user.ID))
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{User: user}, nil
}

// GetCurrentUser resolves a user id into the user entity. The id is expected
// to come from an already-verified token; no credential or token logic here.
func (srv *authService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// UpdateProfile applies explicit identity mutations within a single transaction.
func (srv *authService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	var updated *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, findErr := userRepo.FindByID(ctx, userID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(findErr, "failed to find user by id")
		}

		if input.Name != nil {
			name, nameErr := srv.validateName(*input.Name)
			if nameErr != nil {
				return nameErr
			}
			user.Name = name
		}

		if input.Email != nil {
			email, emailErr := srv.validateEmail(*input.Email)
			if emailErr != nil {
				return errors.Wrap(domainerrors.ErrValidationFailed, emailErr.Error())
			}

			if email != user.Email {
				exists, existsErr := userRepo.ExistsByEmail(ctx, email)
				if existsErr != nil {
					return errors.Wrap(existsErr, "failed to check email existence")
				}
				if exists {
					return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
				}
				user.Email = email
			}
		}

		if input.IsActive != nil {
			user.IsActive = *input.IsActive
		}

		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			if errors.Is(updateErr, repository.ErrDuplicateEmail) {
				return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
			}

			return errors.Wrap(updateErr, "failed to update user")
		}

		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Profile update failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("userID", userID))

	return updated, nil
}

// Logout is a deliberate no-op: tokens are stateless and the server keeps no
// session record to invalidate. The client discards its tokens; any future
// denylist or refresh-token store plugs in here.
func (srv *authService) Logout(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("User logged out", slog.Any("userID", userID))

	return nil
}

// --- validation helpers ---

func (srv *authService) validateName(name string) (string, error) {
	trimmed := entity.TrimName(name)
	length := utf8.RuneCountInString(trimmed)
	if length < minNameLength || length > maxNameLength {
		return "", errors.Wrapf(domainerrors.ErrValidationFailed, "name must be between %d and %d characters", minNameLength, maxNameLength)
	}

	return trimmed, nil
}

// validateEmail normalizes and syntax-checks an email address. The caller
// decides which taxonomy error a failure maps to: ValidationFailed on
// registration, InvalidCredentials on login.
func (srv *authService) validateEmail(email string) (string, error) {
	normalized := entity.NormalizeEmail(email)
	if err := srv.validate.Var(normalized, "required,email"); err != nil {
		return "", errors.New("email address is malformed")
	}

	return normalized, nil
}

func (srv *authService) validatePassword(password string) error {
	length := utf8.RuneCountInString(password)
	if length < minPasswordLength {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "password must be at least %d characters long", minPasswordLength)
	}
	if length > maxPasswordLength {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "password must be at most %d characters long", maxPasswordLength)
	}

	hasLetter := false
	for _, r := range password {
		if unicode.IsLetter(r) {
			hasLetter = true

			break
		}
	}
	if !hasLetter {
		return errors.Wrap(domainerrors.ErrValidationFailed, "password must contain at least one letter")
	}

	return nil
}
