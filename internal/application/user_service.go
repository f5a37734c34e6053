package application

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/lendly/service-rental/internal/apperr"
	"github.com/lendly/service-rental/internal/auth"
	userDomain "github.com/lendly/service-rental/internal/domain/user"
)

// RegisterUserRequest is the request DTO for creating an account.
type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// UpdateUserRequest is the request DTO for a partial profile update.
// Absent fields are left untouched.
type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
}

// LoginRequest is the request DTO for obtaining a token.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserDTO is the API response representation of a user.
type UserDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// TokenDTO carries an issued access token.
type TokenDTO struct {
	Token string `json:"token"`
}

// UserService implements account registration and authentication.
type UserService struct {
	users userDomain.Repository
	jwt   *auth.JWTManager
	log   *zap.Logger
}

// NewUserService creates a new UserService.
func NewUserService(users userDomain.Repository, jwt *auth.JWTManager, log *zap.Logger) *UserService {
	return &UserService{users: users, jwt: jwt, log: log}
}

// Register creates a new account with a unique email.
func (s *UserService) Register(ctx context.Context, req RegisterUserRequest) (*UserDTO, error) {
	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.NewValidationError("email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u, err := userDomain.NewUser(req.Name, req.Email, string(hash))
	if err != nil {
		return nil, err
	}

	saved, err := s.users.Save(ctx, u)
	if err != nil {
		return nil, err
	}

	s.log.Info("user registered", zap.Int64("user_id", saved.ID()))

	result := toUserDTO(saved)
	return &result, nil
}

// Get retrieves a user by id.
func (s *UserService) Get(ctx context.Context, id int64) (*UserDTO, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := toUserDTO(u)
	return &result, nil
}

// List returns every registered user.
func (s *UserService) List(ctx context.Context) ([]UserDTO, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]UserDTO, len(users))
	for i, u := range users {
		dtos[i] = toUserDTO(u)
	}
	return dtos, nil
}

// Update applies a partial profile update. Users may only change their
// own profile; a changed email must stay unique.
func (s *UserService) Update(ctx context.Context, callerID, userID int64, req UpdateUserRequest) (*UserDTO, error) {
	if callerID != userID {
		return nil, apperr.NewForbiddenError("users can only update their own profile")
	}

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != u.Email() {
		taken, err := s.users.ExistsByEmail(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperr.NewValidationError("email is already registered")
		}
	}

	if err := u.ApplyPatch(userDomain.Patch{Name: req.Name, Email: req.Email}); err != nil {
		return nil, err
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}

	result := toUserDTO(u)
	return &result, nil
}

// Delete removes the caller's own account.
func (s *UserService) Delete(ctx context.Context, callerID, userID int64) error {
	if callerID != userID {
		return apperr.NewForbiddenError("users can only delete their own account")
	}

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return err
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}

	s.log.Info("user deleted", zap.Int64("user_id", userID))
	return nil
}

// Login verifies the credentials and issues an access token. Wrong
// email and wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, req LoginRequest) (*TokenDTO, error) {
	u, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		var notFound *apperr.NotFoundError
		if errors.As(err, &notFound) {
			return nil, apperr.NewUnauthenticatedError("invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash()), []byte(req.Password)); err != nil {
		return nil, apperr.NewUnauthenticatedError("invalid credentials")
	}

	token, err := s.jwt.Generate(u.ID())
	if err != nil {
		return nil, err
	}
	return &TokenDTO{Token: token}, nil
}

func toUserDTO(u *userDomain.User) UserDTO {
	return UserDTO{ID: u.ID(), Name: u.Name(), Email: u.Email()}
}
