package authdto

import (
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
)

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}
