package auth

import (
	"context"
	"errors"
	"time"

	"github.com/avdeevra/equiprent/internal/domain"
	"github.com/avdeevra/equiprent/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*Session, error)
	Login(ctx context.Context, phone, password string) (*Session, error)
}

type RegisterInput struct {
	Name     string
	Phone    string
	Password string
	Role     domain.Role
}

// Session is the issued token together with the user it belongs to.
type Session struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type AuthService struct {
	users    repository.UserRepository
	secret   string
	tokenTTL time.Duration
}

func NewAuthService(users repository.UserRepository, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{users: users, secret: secret, tokenTTL: tokenTTL}
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*Session, error) {
	if input.Name == "" || input.Phone == "" {
		return nil, errors.New("name and phone are required")
	}
	if input.Password == "" {
		return nil, errors.New("password is required")
	}
	if input.Role == "" {
		input.Role = domain.RoleFarmer
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         input.Name,
		Phone:        input.Phone,
		PasswordHash: string(hash),
		Role:         input.Role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.newSession(user)
}

func (s *AuthService) Login(ctx context.Context, phone, password string) (*Session, error) {
	user, err := s.users.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.newSession(user)
}

func (s *AuthService) newSession(user *domain.User) (*Session, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"exp":  now.Add(s.tokenTTL).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return nil, err
	}

	return &Session{Token: signed, User: *user}, nil
}

var _ AuthUseCase = (*AuthService)(nil)
