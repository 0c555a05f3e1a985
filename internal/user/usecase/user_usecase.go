package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/allisson/go-pwdhash"
	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/identity/internal/errors"
	"github.com/allisson/identity/internal/user/domain"
	appValidation "github.com/allisson/identity/internal/validation"
)

// userUseCase implements UserUseCase.
type userUseCase struct {
	userRepo       UserRepository
	passwordHasher *pwdhash.PasswordHasher
}

// NewUserUseCase creates a new UserUseCase with the provided dependencies.
// User passwords are hashed with Argon2id using the interactive policy.
func NewUserUseCase(userRepo UserRepository) (UserUseCase, error) {
	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create password hasher")
	}

	return &userUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
	}, nil
}

// validateCreateUserInput validates registration input: required fields, email
// format, and password strength.
func (u *userUseCase) validateCreateUserInput(input *domain.CreateUserInput) error {
	err := validation.Errors{
		"name": validation.Validate(input.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		"email": validation.Validate(input.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
		"password": validation.Validate(input.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be between 8 and 128 characters"),
		),
	}.Filter()
	if err != nil {
		return appValidation.WrapValidationError(err)
	}

	if !input.Type.Valid() {
		return domain.ErrInvalidUserType
	}
	return nil
}

// Create registers a new user with a hashed password.
func (u *userUseCase) Create(ctx context.Context, input *domain.CreateUserInput) (*domain.User, error) {
	if err := u.validateCreateUserInput(input); err != nil {
		return nil, err
	}

	hashedPassword, err := u.passwordHasher.Hash([]byte(input.Password))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash password")
	}

	user := &domain.User{
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.TrimSpace(strings.ToLower(input.Email)),
		Password:  hashedPassword,
		Type:      input.Type,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetByID retrieves a user by id, including linked project ids.
func (u *userUseCase) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// GetByEmail retrieves a user by email, including linked project ids.
func (u *userUseCase) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return u.userRepo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
}

// Update modifies an existing user. The password is re-hashed only when a new
// one is supplied.
func (u *userUseCase) Update(
	ctx context.Context,
	id int64,
	input *domain.UpdateUserInput,
) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !input.Type.Valid() {
		return nil, domain.ErrInvalidUserType
	}

	user.Name = strings.TrimSpace(input.Name)
	user.Email = strings.TrimSpace(strings.ToLower(input.Email))
	user.Type = input.Type
	user.UpdatedAt = time.Now().UTC()

	if input.Password != nil {
		hashedPassword, err := u.passwordHasher.Hash([]byte(*input.Password))
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to hash password")
		}
		user.Password = hashedPassword
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Delete removes a user. Deletion is physical; project links are removed by
// the store's cascading constraints.
func (u *userUseCase) Delete(ctx context.Context, id int64) error {
	return u.userRepo.Delete(ctx, id)
}

// List retrieves users ordered by id with pagination support.
func (u *userUseCase) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	return u.userRepo.List(ctx, offset, limit)
}

// LinkProject grants a user access to a project.
func (u *userUseCase) LinkProject(ctx context.Context, userID, projectID int64) error {
	if _, err := u.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return u.userRepo.LinkProject(ctx, userID, projectID)
}

// UnlinkProject revokes a user's access to a project.
func (u *userUseCase) UnlinkProject(ctx context.Context, userID, projectID int64) error {
	if _, err := u.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return u.userRepo.UnlinkProject(ctx, userID, projectID)
}

// VerifyPassword performs a constant-time comparison between a plaintext
// password and the user's stored hash.
func (u *userUseCase) VerifyPassword(user *domain.User, password string) bool {
	ok, err := u.passwordHasher.Verify([]byte(password), user.Password)
	if err != nil {
		return false
	}
	return ok
}
