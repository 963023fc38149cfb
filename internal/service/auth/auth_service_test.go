package auth

import (
	"context"
	"testing"
	"time"

	"github.com/avdeevra/equiprent/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryUsers is an in-memory user store keyed by phone.
type memoryUsers struct {
	byPhone map[string]*domain.User
	nextID  int64
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byPhone: make(map[string]*domain.User)}
}

func (m *memoryUsers) Create(ctx context.Context, user *domain.User) error {
	if _, ok := m.byPhone[user.Phone]; ok {
		return domain.ErrUserExists
	}
	m.nextID++
	user.ID = m.nextID
	user.CreatedAt = time.Now()
	stored := *user
	m.byPhone[user.Phone] = &stored
	return nil
}

func (m *memoryUsers) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	user, ok := m.byPhone[phone]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	found := *user
	return &found, nil
}

func (m *memoryUsers) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	for _, user := range m.byPhone {
		if user.ID == id {
			found := *user
			return &found, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *memoryUsers) List(ctx context.Context) ([]domain.User, error) {
	users := make([]domain.User, 0, len(m.byPhone))
	for _, user := range m.byPhone {
		users = append(users, *user)
	}
	return users, nil
}

func (m *memoryUsers) Delete(ctx context.Context, id int64) error {
	for phone, user := range m.byPhone {
		if user.ID == id {
			delete(m.byPhone, phone)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

const testSecret = "test-secret"

func TestAuthService_RegisterAndLogin(t *testing.T) {
	service := NewAuthService(newMemoryUsers(), testSecret, 7*24*time.Hour)
	ctx := context.Background()

	session, err := service.Register(ctx, RegisterInput{
		Name: "Ravi", Phone: "555-0101", Password: "hunter2",
	})
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, domain.RoleFarmer, session.User.Role)
	assert.NotEqual(t, "hunter2", session.User.PasswordHash, "password must not be stored in plain text")

	logged, err := service.Login(ctx, "555-0101", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, logged.User.ID)
}

func TestAuthService_Register_Validation(t *testing.T) {
	service := NewAuthService(newMemoryUsers(), testSecret, time.Hour)
	ctx := context.Background()

	testCases := []struct {
		name  string
		input RegisterInput
	}{
		{name: "missing name", input: RegisterInput{Phone: "555-0101", Password: "x"}},
		{name: "missing phone", input: RegisterInput{Name: "Ravi", Password: "x"}},
		{name: "missing password", input: RegisterInput{Name: "Ravi", Phone: "555-0101"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			session, err := service.Register(ctx, tc.input)
			assert.Error(t, err)
			assert.Nil(t, session)
		})
	}
}

func TestAuthService_Register_DuplicatePhone(t *testing.T) {
	service := NewAuthService(newMemoryUsers(), testSecret, time.Hour)
	ctx := context.Background()

	_, err := service.Register(ctx, RegisterInput{Name: "Ravi", Phone: "555-0101", Password: "x"})
	require.NoError(t, err)

	session, err := service.Register(ctx, RegisterInput{Name: "Asha", Phone: "555-0101", Password: "y"})
	assert.ErrorIs(t, err, domain.ErrUserExists)
	assert.Nil(t, session)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	service := NewAuthService(newMemoryUsers(), testSecret, time.Hour)
	ctx := context.Background()

	_, err := service.Register(ctx, RegisterInput{Name: "Ravi", Phone: "555-0101", Password: "hunter2"})
	require.NoError(t, err)

	t.Run("unknown phone", func(t *testing.T) {
		session, err := service.Login(ctx, "555-9999", "hunter2")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Nil(t, session)
	})

	t.Run("wrong password", func(t *testing.T) {
		session, err := service.Login(ctx, "555-0101", "wrong")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Nil(t, session)
	})
}

func TestAuthService_TokenClaims(t *testing.T) {
	service := NewAuthService(newMemoryUsers(), testSecret, 2*time.Hour)
	ctx := context.Background()

	session, err := service.Register(ctx, RegisterInput{
		Name: "Admin", Phone: "555-0001", Password: "x", Role: domain.RoleAdmin,
	})
	require.NoError(t, err)

	tok, err := jwt.Parse(session.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, tok.Valid)

	claims, ok := tok.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(session.User.ID), claims["sub"])
	assert.Equal(t, string(domain.RoleAdmin), claims["role"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.Greater(t, int64(exp), time.Now().Unix())
}
