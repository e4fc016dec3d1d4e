package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/immortalfoodie/Ecosphere/internal/model"
	"github.com/immortalfoodie/Ecosphere/internal/repository"
)

var ErrEmailTaken = errors.New("email_taken")
var ErrInvalidCredentials = errors.New("invalid_credentials")

const sessionTTL = 7 * 24 * time.Hour

type AuthService interface {
	Signup(ctx context.Context, email, password, name string) (*model.Account, string, error)
	Login(ctx context.Context, email, password string) (*model.Account, string, error)
}

type authService struct {
	repo   repository.AccountRepository
	secret []byte
	now    func() time.Time
}

func NewAuthService(repo repository.AccountRepository, secret string) AuthService {
	return &authService{repo: repo, secret: []byte(secret), now: time.Now}
}

func (s *authService) Signup(ctx context.Context, email, password, name string) (*model.Account, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if email == "" || password == "" || name == "" {
		return nil, "", errors.New("all fields are required")
	}
	if len(password) < 6 {
		return nil, "", errors.New("password must be at least 6 characters")
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}
	account := &model.Account{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, account); err != nil {
		return nil, "", err
	}

	token, err := s.mintToken(account)
	if err != nil {
		return nil, "", err
	}
	return account, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*model.Account, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.mintToken(account)
	if err != nil {
		return nil, "", err
	}
	return account, token, nil
}

func (s *authService) mintToken(account *model.Account) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"email": account.Email,
		"name":  account.Name,
		"iat":   now.Unix(),
		"exp":   now.Add(sessionTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
