package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mlebedev/authgate/internal/common"
	"github.com/mlebedev/authgate/internal/cryptox"
	"github.com/mlebedev/authgate/internal/logging"
	"github.com/mlebedev/authgate/internal/server/auth"
)

const minCredentialLength = 3

// Session is the token pair handed out on login and signup.
type Session struct {
	RefreshToken string
	AccessToken  string
	AccessExp    int64
}

// RefreshTokenRegistry is the slice of refreshtokens.Registry the service needs.
type RefreshTokenRegistry interface {
	Issue(ctx context.Context, username, origin string) (string, error)
	VerifyAndTouch(ctx context.Context, username, token string) error
}

// InviteRegistry is the slice of invites.Registry the service needs.
type InviteRegistry interface {
	Redeem(ctx context.Context, encodedToken, redeemer string) error
}

// Limiter throttles login attempts per username.
type Limiter interface {
	Allow(key string) bool
}

type Service struct {
	repo          Repository
	refreshTokens RefreshTokenRegistry
	invites       InviteRegistry
	codec         *auth.Codec
	limiter       Limiter
	bootstrapUser string
	logger        logging.Logger
}

func NewService(repo Repository, refreshTokens RefreshTokenRegistry, invites InviteRegistry,
	codec *auth.Codec, limiter Limiter, bootstrapUser string, logger logging.Logger) *Service {
	return &Service{
		repo:          repo,
		refreshTokens: refreshTokens,
		invites:       invites,
		codec:         codec,
		limiter:       limiter,
		bootstrapUser: bootstrapUser,
		logger:        logger.With("module", "users"),
	}
}

// Login verifies the password and issues a fresh token pair. A wrong
// password and an unknown username are indistinguishable to the caller
// (common.ErrorInvalidCredentials for both).
func (s *Service) Login(ctx context.Context, username, password, origin string) (*Session, error) {
	if len(username) < minCredentialLength || len(password) < minCredentialLength {
		return nil, common.ErrorValidation
	}
	if !s.limiter.Allow(username) {
		s.logger.Warn(ctx, "login throttled", "username", username)
		return nil, common.ErrTooManyAttempts
	}

	digest, err := s.repo.GetDigest(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, err
	}

	if err := cryptox.VerifyPassword(password, digest); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, err
	}

	return s.openSession(ctx, username, origin)
}

// Signup creates an account with a fresh invite code and logs it in. The
// bootstrap user may sign up without an invite, once. The invite is only
// consumed after the username is known to be free, so a taken name does
// not burn the code.
func (s *Service) Signup(ctx context.Context, username, password, inviteCode, origin string) (*Session, error) {
	if len(username) < minCredentialLength || len(password) < minCredentialLength {
		return nil, common.ErrorValidation
	}
	if strings.Contains(username, common.KeySeparator) {
		return nil, common.ErrorValidation
	}

	_, err := s.repo.GetDigest(ctx, username)
	if err == nil {
		return nil, common.ErrorConflict
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}

	digest, err := cryptox.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	if username != s.bootstrapUser {
		if err := s.invites.Redeem(ctx, inviteCode, username); err != nil {
			return nil, err
		}
	}

	err = s.repo.Create(ctx, &Credential{Username: username, Digest: digest})
	if errors.Is(err, common.ErrorConflict) {
		// Lost a race after the precheck; the invite is already burned.
		s.logger.Warn(ctx, "signup conflict after invite redemption", "username", username)
		return nil, common.ErrorConflict
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "account created", "username", username)
	return s.openSession(ctx, username, origin)
}

// Refresh trades a valid refresh token for a new short-lived access token.
func (s *Service) Refresh(ctx context.Context, username, refreshToken string) (accessToken string, accessExp int64, err error) {
	if err := s.refreshTokens.VerifyAndTouch(ctx, username, refreshToken); err != nil {
		return "", 0, err
	}
	return s.codec.Issue(username)
}

// ChangePassword replaces the stored digest after verifying the current
// password. Existing refresh tokens stay valid.
func (s *Service) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	if len(newPassword) < minCredentialLength {
		return common.ErrorValidation
	}

	digest, err := s.repo.GetDigest(ctx, username)
	if err != nil {
		return err
	}
	if err := cryptox.VerifyPassword(oldPassword, digest); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return common.ErrInvalidOldPassword
		}
		return err
	}

	newDigest, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}
	if err := s.repo.UpdateDigest(ctx, username, newDigest); err != nil {
		return err
	}

	s.logger.Info(ctx, "password changed", "username", username)
	return nil
}

func (s *Service) openSession(ctx context.Context, username, origin string) (*Session, error) {
	refreshToken, err := s.refreshTokens.Issue(ctx, username, origin)
	if err != nil {
		return nil, err
	}
	accessToken, exp, err := s.codec.Issue(username)
	if err != nil {
		return nil, err
	}
	return &Session{
		RefreshToken: refreshToken,
		AccessToken:  accessToken,
		AccessExp:    exp,
	}, nil
}
