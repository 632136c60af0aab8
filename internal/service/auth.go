package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avoronin/ar_shop/internal/apperr"
	"github.com/avoronin/ar_shop/internal/hash"
	"github.com/avoronin/ar_shop/internal/logging"
	"github.com/avoronin/ar_shop/internal/models"
	"github.com/avoronin/ar_shop/internal/mykafka"
	"github.com/avoronin/ar_shop/internal/repo"
	"github.com/avoronin/ar_shop/internal/token"
)

type AuthService struct {
	Repo     *repo.GormRepo
	Tokens   *token.Service
	Producer *mykafka.Producer
}

type RegisterInput struct {
	Email    string
	Username string
	Password string
	FullName string
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if in.Email == "" || in.Username == "" || in.Password == "" {
		return nil, apperr.Validation("email, username and password are required")
	}

	if _, err := s.Repo.FindByEmail(ctx, in.Email); err == nil {
		return nil, apperr.Conflict("user with this email already exists")
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}
	if _, err := s.Repo.FindByUsername(ctx, in.Username); err == nil {
		return nil, apperr.Conflict("this username is already taken")
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := hash.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        in.Email,
		Username:     in.Username,
		PasswordHash: passwordHash,
		FullName:     in.FullName,
	}
	// the unique columns stay authoritative: a register/register race loses
	// here with the same conflict the pre-checks produce
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.publish(ctx, mykafka.TopicUserEvents, user.ID, map[string]interface{}{
		"type":     "user_registered",
		"user_id":  user.ID,
		"username": user.Username,
	})

	return user, nil
}

// Login verifies the credentials and issues a bearer token. An unknown
// email and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	if email == "" || password == "" {
		return "", nil, apperr.Validation("email and password are required")
	}

	user, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return "", nil, apperr.Unauthenticated("invalid email or password")
		}
		return "", nil, err
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		return "", nil, apperr.Unauthenticated("invalid email or password")
	}

	accessToken, err := s.Tokens.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	s.publish(ctx, mykafka.TopicUserEvents, user.ID, map[string]interface{}{
		"type":     "user_logged_in",
		"user_id":  user.ID,
		"username": user.Username,
	})

	return accessToken, user, nil
}

func (s *AuthService) Profile(ctx context.Context, userID uint) (*models.User, error) {
	return s.Repo.GetUser(ctx, userID)
}

func (s *AuthService) publish(ctx context.Context, topic string, userID uint, event map[string]interface{}) {
	publishEvent(ctx, s.Producer, topic, userID, event)
}

func publishEvent(ctx context.Context, p *mykafka.Producer, topic string, userID uint, event map[string]interface{}) {
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := p.PublishEvent(pubCtx, topic, fmt.Sprint(userID), event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "topic", topic, "error", err)
	}
}
