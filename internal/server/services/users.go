// Package services contains server-side business logic. This file
// implements UserService, which handles signup with email verification,
// OTP verification/resend, and login with JWT issuance.
package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/dbx"
	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
	"github.com/dmitrijs2005/taskkeeper/internal/server/config"
	"github.com/dmitrijs2005/taskkeeper/internal/server/mail"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/otp"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/repomanager"
)

// LoginResult is the public payload returned on successful login.
type LoginResult struct {
	Token    string `json:"token"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserService provides account lifecycle operations:
//   - Signup: create an unverified user plus their first OTP, atomically
//   - VerifyOtp: consume a valid code and activate the account
//   - ResendOtp: invalidate outstanding codes and issue a fresh one
//   - Login: verify credentials and mint a session token
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	sender                mail.Sender
	logger                logging.Logger
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	otpValidityDuration   time.Duration
}

// NewUserService constructs a UserService using repositories, the mail
// collaborator, and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, sender mail.Sender, l logging.Logger, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		sender:                sender,
		logger:                l.With("module", "user_service"),
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
		otpValidityDuration:   cfg.OtpValidityDuration,
	}
}

// Signup registers a new account. The user row and the first verification
// code are created in one transaction, so a failure cannot leave behind an
// account with no way to verify it. Mail delivery runs after commit and is
// non-fatal: a lost mail is recovered via ResendOtp.
func (s *UserService) Signup(ctx context.Context, username, email, password, genderID string) error {
	if username == "" || email == "" || password == "" || genderID == "" {
		return common.ErrorValidation
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return common.ErrorInternal
	}

	code, err := otp.GenerateCode()
	if err != nil {
		return common.ErrorInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		GenderID:     genderID,
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Users(tx).Create(ctx, user); err != nil {
			return err
		}
		_, err := s.repomanager.Otps(tx).Create(ctx, s.newOtp(user.ID, code))
		return err
	}); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return common.ErrorAlreadyExists
		}
		return common.ErrorInternal
	}

	s.dispatchCode(ctx, email, code)

	return nil
}

// VerifyOtp consumes a matching unused, unexpired code and marks the
// account verified. Consumption is a conditional update, so two concurrent
// attempts with the same code cannot both succeed.
func (s *UserService) VerifyOtp(ctx context.Context, email, code string) error {
	user, err := s.findUser(ctx, email)
	if err != nil {
		return err
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Otps(tx).Consume(ctx, user.ID, code, time.Now()); err != nil {
			return err
		}
		return s.repomanager.Users(tx).MarkVerified(ctx, user.ID, time.Now())
	}); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// wrong code and expired code are deliberately indistinguishable
			return common.ErrOtpInvalidOrExpired
		}
		return common.ErrorInternal
	}

	return nil
}

// ResendOtp invalidates every outstanding code for the user and stores a
// fresh one, then dispatches it. The invalidation and the insert share one
// transaction so there is never more than one live code.
func (s *UserService) ResendOtp(ctx context.Context, email string) error {
	user, err := s.findUser(ctx, email)
	if err != nil {
		return err
	}

	code, err := otp.GenerateCode()
	if err != nil {
		return common.ErrorInternal
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Otps(tx).InvalidateActive(ctx, user.ID, time.Now()); err != nil {
			return err
		}
		_, err := s.repomanager.Otps(tx).Create(ctx, s.newOtp(user.ID, code))
		return err
	}); err != nil {
		return common.ErrorInternal
	}

	s.dispatchCode(ctx, email, code)

	return nil
}

// Login verifies the credentials and returns a fresh session token with the
// public profile fields. Unknown email and wrong password produce the same
// error, so responses do not reveal which emails are registered.
func (s *UserService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &LoginResult{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

// --- helpers below ---

func (s *UserService) findUser(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}

func (s *UserService) newOtp(userID, code string) *models.Otp {
	return &models.Otp{
		ID:        uuid.NewString(),
		UserID:    userID,
		Code:      code,
		ExpiresAt: time.Now().Add(s.otpValidityDuration),
	}
}

func (s *UserService) dispatchCode(ctx context.Context, email, code string) {
	if err := s.sender.SendCode(ctx, email, code); err != nil {
		s.logger.Warn(ctx, "otp delivery failed", "error", err)
	}
}
