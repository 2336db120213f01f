package application

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/mail"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"blogapi/config"
	"blogapi/internal/domain/apperr"
	"blogapi/internal/domain/entity"
	"blogapi/internal/domain/repository"
	"blogapi/pkg/helpers"
	"blogapi/pkg/mailer"
)

// Publisher enqueues email jobs. Satisfied by helpers.RabbitPublisher.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// ImageStore persists uploaded profile images and returns their public URL.
// Satisfied by helpers.GCSImageStore.
type ImageStore interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}

// AccountService orchestrates registration, login and profile-image upload.
type AccountService struct {
	Repo   repository.UserRepository
	JWT    *helpers.JWTManager
	Images ImageStore
	Pub    Publisher
	Logger *logrus.Logger
	Cfg    *config.Config
}

func NewAccountService(repo repository.UserRepository, jwt *helpers.JWTManager, images ImageStore, pub Publisher, logger *logrus.Logger, cfg *config.Config) *AccountService {
	return &AccountService{Repo: repo, JWT: jwt, Images: images, Pub: pub, Logger: logger, Cfg: cfg}
}

// RegisterResult echoes the email plus a human-readable message; the
// generated password is only ever delivered out of band.
type RegisterResult struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Register creates an account with a generated temporary password and
// sends a welcome email carrying a password-reset link. Email delivery is
// best-effort: a publish failure is logged, never surfaced.
func (s *AccountService) Register(ctx context.Context, name, email string) (*RegisterResult, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, apperr.Validation("name is required")
	}
	if email == "" {
		return nil, apperr.Validation("email is required")
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return nil, apperr.Validation("invalid email format")
	}

	password, err := helpers.GeneratePassword()
	if err != nil {
		return nil, err
	}
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Slug:     helpers.EmailSlug(email),
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}

	s.sendWelcomeEmail(ctx, u)

	return &RegisterResult{
		Email:   u.Email,
		Message: "Account created. Check your email to set your password.",
	}, nil
}

func (s *AccountService) sendWelcomeEmail(ctx context.Context, u *entity.User) {
	if s.Pub == nil || s.Cfg == nil || !s.Cfg.MailSendEnabled {
		return
	}
	resetLink := s.Cfg.ResetPasswordURL + "?email=" + u.Email
	job := mailer.EmailJob{
		To:       u.Email,
		Template: mailer.TemplateWelcome,
		Data: map[string]any{
			"Name":     u.Name,
			"ResetURL": resetLink,
		},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("email", u.Email).Warn("welcome email enqueue failed")
	}
}

// Login verifies credentials and issues a session token. A missing user
// and a wrong password are indistinguishable to the caller.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		// Only an absent account is a credential failure; a store fault
		// must surface as an internal error, not a 401.
		if errors.Is(err, apperr.ErrNotFound) {
			return "", apperr.ErrInvalidCredentials
		}
		return "", err
	}
	if u == nil {
		return "", apperr.ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return "", apperr.ErrInvalidCredentials
	}
	token, _, err := s.JWT.Issue(u)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("email", email).Error("token generation failed")
		}
		return "", err
	}
	return token, nil
}

var dataURIPrefix = regexp.MustCompile(`^data:image/[a-z]+;base64,`)

// UploadImage decodes a base64-encoded image, stores it under a random
// name and records the resulting URL on the user's profile.
func (s *AccountService) UploadImage(ctx context.Context, email, base64Image string) (string, error) {
	if s.Images == nil {
		return "", errors.New("image storage not configured")
	}
	raw := dataURIPrefix.ReplaceAllString(base64Image, "")
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return "", apperr.Validation("invalid base64 image")
	}

	objectPath := "images/" + uuid.NewString() + ".jpg"
	url, err := s.Images.Upload(ctx, objectPath, "image/jpeg", bytes.NewReader(data))
	if err != nil {
		return "", err
	}

	if err := s.Repo.UpdateImage(ctx, email, url); err != nil {
		return "", err
	}
	return url, nil
}
