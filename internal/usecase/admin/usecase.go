package admin

import (
	"context"
	"errors"
	"strings"

	domain "loan-crm/internal/domain/admin"
	"loan-crm/internal/logger"
	"loan-crm/pkg/secret"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrUsernameRequired = errors.New("admin username is required")

type Settings struct {
	Username string
	Email    string
	// Password is used as-is when set; otherwise one is generated.
	Password string
}

type Result struct {
	Created  bool   `json:"created"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	// GeneratedPassword is returned once, only when this call created the
	// account without a configured password.
	GeneratedPassword string `json:"generated_password,omitempty"`
	Message           string `json:"message"`
}

type Usecase struct {
	repo     domain.Repository
	settings Settings
	cost     int
	log      *zap.Logger
}

func NewUsecase(r domain.Repository, s Settings, log *zap.Logger) *Usecase {
	return &Usecase{repo: r, settings: s, cost: bcrypt.DefaultCost, log: logger.OrNop(log)}
}

// Bootstrap creates the admin account unless it already exists.
func (u *Usecase) Bootstrap(ctx context.Context) (*Result, error) {
	username := strings.TrimSpace(u.settings.Username)
	if username == "" {
		return nil, ErrUsernameRequired
	}

	existing, err := u.repo.GetByUsername(ctx, username)
	if err == nil {
		return &Result{Username: existing.Username, Email: existing.Email, Message: "admin user already exists"}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	password, generated := u.settings.Password, ""
	if password == "" {
		if password, err = secret.NewPassword(); err != nil {
			return nil, err
		}
		generated = password
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), u.cost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{Username: username, Email: u.settings.Email, PasswordHash: string(hash)}
	if err := u.repo.Create(ctx, user); err != nil {
		// someone else bootstrapped between the lookup and the insert
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &Result{Username: username, Email: u.settings.Email, Message: "admin user already exists"}, nil
		}
		return nil, err
	}
	u.log.Info("admin user created", zap.String("username", username), zap.Bool("generated_password", generated != ""))
	return &Result{
		Created:           true,
		Username:          username,
		Email:             user.Email,
		GeneratedPassword: generated,
		Message:           "admin user created",
	}, nil
}
