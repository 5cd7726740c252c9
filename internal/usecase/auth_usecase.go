package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	authdto "github.com/brigatacurvasud/bcs-service/internal/usecase/dto/auth"
)

type TokenManager interface {
	Issue(user *domain.User) (string, time.Time, error)
	Parse(token string) (*domain.Principal, error)
}

type PasswordComparer interface {
	Compare(hash, password string) error
}

type AuthUsecase interface {
	Login(ctx context.Context, input *authdto.LoginInput) (*authdto.LoginOutput, error)
	// Authenticate resolves a session token to the caller, reloading the role
	// so that role changes apply to live sessions.
	Authenticate(ctx context.Context, token string) (*domain.Principal, error)
}

type DefaultAuthUsecase struct {
	userRepo  domain.UserRepository
	tokens    TokenManager
	passwords PasswordComparer
}

func NewDefaultAuthUsecase(userRepo domain.UserRepository, tokens TokenManager, passwords PasswordComparer) *DefaultAuthUsecase {
	return &DefaultAuthUsecase{
		userRepo:  userRepo,
		tokens:    tokens,
		passwords: passwords,
	}
}

func (uc *DefaultAuthUsecase) Login(ctx context.Context, input *authdto.LoginInput) (*authdto.LoginOutput, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := validateInput(input); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Status != domain.UserStatusActive || user.PasswordHash == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if err := uc.passwords.Compare(user.PasswordHash, input.Password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := uc.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &authdto.LoginOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

func (uc *DefaultAuthUsecase) Authenticate(ctx context.Context, token string) (*domain.Principal, error) {
	claims, err := uc.tokens.Parse(token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if user.Status != domain.UserStatusActive {
		return nil, domain.ErrUnauthorized
	}
	return &domain.Principal{UserID: user.ID, Role: user.Role}, nil
}
