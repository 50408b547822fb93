// Package otp implements phone-number login with one-time codes. Codes are
// stored hashed and expire after a short window; verification is capped to a
// fixed number of attempts per challenge.
package otp

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"math/big"
	"regexp"
	"strings"
	"time"
)

var (
	ErrChallengeNotFound = errors.New("no pending code for this phone number")
	ErrChallengeExpired  = errors.New("the code has expired, request a new one")
	ErrTooManyAttempts   = errors.New("too many wrong attempts, request a new code")
	ErrCodeMismatch      = errors.New("the code does not match")
	ErrInvalidPhone      = errors.New("invalid phone number")
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{8,15}$`)

// Challenge is one pending verification for a phone number.
type Challenge struct {
	Phone     string
	CodeHash  string
	Attempts  int
	ExpiresAt time.Time
	CreatedAt time.Time
}

// User is the account record created or refreshed on successful verification.
type User struct {
	ID        string
	Phone     string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ChallengeRepository persists pending challenges, one per phone number.
type ChallengeRepository interface {
	Save(ctx context.Context, challenge *Challenge) error
	FindByPhone(ctx context.Context, phone string) (*Challenge, error)
	IncrementAttempts(ctx context.Context, phone string) (int, error)
	Delete(ctx context.Context, phone string) error
}

// UserRepository persists accounts keyed by phone number.
type UserRepository interface {
	UpsertByPhone(ctx context.Context, phone string) (*User, error)
}

// Sender delivers a one-time code to the given phone number.
type Sender interface {
	Send(ctx context.Context, phone, code string) error
}

// Service drives the request/verify flow.
type Service struct {
	challenges  ChallengeRepository
	users       UserRepository
	sender      Sender
	secret      string
	ttl         time.Duration
	maxAttempts int
	logger      *log.Logger
}

// NewService builds an OTP service. ttl and maxAttempts fall back to 5 minutes
// and 5 attempts when not positive.
func NewService(challenges ChallengeRepository, users UserRepository, sender Sender, secret string, ttl time.Duration, maxAttempts int, logger *log.Logger) *Service {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	return &Service{
		challenges:  challenges,
		users:       users,
		sender:      sender,
		secret:      secret,
		ttl:         ttl,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

// Request creates a fresh challenge for the phone number and sends the code.
// A previous pending challenge for the same number is replaced.
func (s *Service) Request(ctx context.Context, phone string) error {
	normalized, err := NormalizePhone(phone)
	if err != nil {
		return err
	}

	code, err := generateCode()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	challenge := &Challenge{
		Phone:     normalized,
		CodeHash:  HashCode(code, s.secret),
		Attempts:  0,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}
	if err := s.challenges.Save(ctx, challenge); err != nil {
		return err
	}

	if err := s.sender.Send(ctx, normalized, code); err != nil {
		if s.logger != nil {
			s.logger.Printf("failed to deliver login code to %s: %v", normalized, err)
		}
		return fmt.Errorf("could not deliver the code: %w", err)
	}
	return nil
}

// Verify checks the submitted code against the pending challenge. On success
// the challenge is consumed and the account is created or refreshed.
func (s *Service) Verify(ctx context.Context, phone, code string) (*User, error) {
	normalized, err := NormalizePhone(phone)
	if err != nil {
		return nil, err
	}

	challenge, err := s.challenges.FindByPhone(ctx, normalized)
	if err != nil {
		return nil, ErrChallengeNotFound
	}
	if time.Now().UTC().After(challenge.ExpiresAt) {
		_ = s.challenges.Delete(ctx, normalized)
		return nil, ErrChallengeExpired
	}
	if challenge.Attempts >= s.maxAttempts {
		return nil, ErrTooManyAttempts
	}

	if HashCode(strings.TrimSpace(code), s.secret) != challenge.CodeHash {
		attempts, incErr := s.challenges.IncrementAttempts(ctx, normalized)
		if incErr == nil && attempts >= s.maxAttempts {
			return nil, ErrTooManyAttempts
		}
		return nil, ErrCodeMismatch
	}

	if err := s.challenges.Delete(ctx, normalized); err != nil && s.logger != nil {
		s.logger.Printf("failed to consume login challenge for %s: %v", normalized, err)
	}

	return s.users.UpsertByPhone(ctx, normalized)
}

// NormalizePhone strips separators and validates the number format.
func NormalizePhone(phone string) (string, error) {
	compact := strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(phone))
	if !phonePattern.MatchString(compact) {
		return "", ErrInvalidPhone
	}
	return compact, nil
}

// HashCode hashes a code together with the server secret.
func HashCode(code, secret string) string {
	sum := sha256.Sum256([]byte(code + secret))
	return hex.EncodeToString(sum[:])
}

// generateCode produces a 6-digit numeric code.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
