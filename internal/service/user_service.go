package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/d60-Lab/viewtube/config"
	"github.com/d60-Lab/viewtube/internal/model"
	"github.com/d60-Lab/viewtube/internal/repository"
	"github.com/d60-Lab/viewtube/pkg/errs"
)

// UserService 账号注册 / 登录。引擎本身只消费中间件注入的 caller id，
// 这里是它的发放端。
type UserService interface {
	Register(ctx context.Context, username, email, password, fullName string) (*model.User, error)
	Login(ctx context.Context, username, password string) (string, *model.User, error)
}

type userService struct {
	users repository.UserRepository
	jwt   config.JWTConfig
}

func NewUserService(users repository.UserRepository, jwtCfg config.JWTConfig) UserService {
	return &userService{users: users, jwt: jwtCfg}
}

func (s *userService) Register(ctx context.Context, username, email, password, fullName string) (*model.User, error) {
	name, err := requireText("username", username)
	if err != nil {
		return nil, err
	}
	name = strings.ToLower(name)
	mail, err := requireText("email", email)
	if err != nil {
		return nil, err
	}
	if len(password) < 6 {
		return nil, errs.Validation("password must be at least 6 characters")
	}

	existing, err := s.users.ByUsername(ctx, name)
	if err != nil {
		return nil, errs.Storage(err)
	}
	if existing != nil {
		return nil, errs.Conflict("username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.Storage(err)
	}

	user := &model.User{
		ID:       uuid.New().String(),
		Username: name,
		Email:    strings.ToLower(mail),
		Password: string(hash),
		FullName: strings.TrimSpace(fullName),
	}
	if err := s.users.Create(ctx, user); err != nil {
		// 唯一索引兜底并发注册
		return nil, errs.Conflict("username or email already taken")
	}
	return user, nil
}

func (s *userService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	name := strings.ToLower(strings.TrimSpace(username))
	user, err := s.users.ByUsername(ctx, name)
	if err != nil {
		return "", nil, errs.Storage(err)
	}
	if user == nil {
		return "", nil, errs.NotFound("user")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errs.Unauthenticated()
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.ID,
		"iat": now.Unix(),
		"exp": now.Add(time.Duration(s.jwt.ExpireMin) * time.Minute).Unix(),
	})
	signed, err := token.SignedString([]byte(s.jwt.Secret))
	if err != nil {
		return "", nil, errs.Storage(err)
	}
	return signed, user, nil
}
