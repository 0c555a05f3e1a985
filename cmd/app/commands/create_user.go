package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	userDomain "github.com/allisson/identity/internal/user/domain"
	userUseCase "github.com/allisson/identity/internal/user/usecase"
)

// RunCreateUser registers a new user. The password is hashed before storage
// and never printed back.
//
// Requirements: Database must be migrated and accessible.
func RunCreateUser(
	ctx context.Context,
	userUC userUseCase.UserUseCase,
	logger *slog.Logger,
	writer io.Writer,
	name string,
	email string,
	password string,
	userType string,
	format string,
) error {
	parsedType, err := parseUserType(userType)
	if err != nil {
		return err
	}

	logger.Info("creating new user",
		slog.String("email", email),
		slog.String("type", string(parsedType)),
	)

	user, err := userUC.Create(ctx, &userDomain.CreateUserInput{
		Name:     name,
		Email:    email,
		Password: password,
		Type:     parsedType,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if format == "json" {
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")
		_ = encoder.Encode(map[string]any{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"type":  string(user.Type),
		})
	} else {
		_, _ = fmt.Fprintf(writer, "User created\n")
		_, _ = fmt.Fprintf(writer, "ID:    %d\n", user.ID)
		_, _ = fmt.Fprintf(writer, "Name:  %s\n", user.Name)
		_, _ = fmt.Fprintf(writer, "Email: %s\n", user.Email)
		_, _ = fmt.Fprintf(writer, "Type:  %s\n", user.Type)
	}

	logger.Info("user created successfully",
		slog.Int64("user_id", user.ID),
		slog.String("email", user.Email),
	)

	return nil
}

// parseUserType converts a user type string to userDomain.UserType.
// Returns an error if the user type string is invalid.
func parseUserType(userType string) (userDomain.UserType, error) {
	switch userType {
	case "SUPERADMIN":
		return userDomain.UserTypeSuperAdmin, nil
	case "ADMIN":
		return userDomain.UserTypeAdmin, nil
	case "USER":
		return userDomain.UserTypeUser, nil
	default:
		return "", fmt.Errorf(
			"invalid user type: %s (valid options: SUPERADMIN, ADMIN, USER)",
			userType,
		)
	}
}
