package otp

import (
	"context"
	"errors"
	"testing"
	"time"
)

type memoryChallengeRepo struct {
	challenges map[string]*Challenge
}

func newMemoryChallengeRepo() *memoryChallengeRepo {
	return &memoryChallengeRepo{challenges: make(map[string]*Challenge)}
}

func (r *memoryChallengeRepo) Save(_ context.Context, challenge *Challenge) error {
	copied := *challenge
	r.challenges[challenge.Phone] = &copied
	return nil
}

func (r *memoryChallengeRepo) FindByPhone(_ context.Context, phone string) (*Challenge, error) {
	challenge, ok := r.challenges[phone]
	if !ok {
		return nil, errors.New("not found")
	}
	copied := *challenge
	return &copied, nil
}

func (r *memoryChallengeRepo) IncrementAttempts(_ context.Context, phone string) (int, error) {
	challenge, ok := r.challenges[phone]
	if !ok {
		return 0, errors.New("not found")
	}
	challenge.Attempts++
	return challenge.Attempts, nil
}

func (r *memoryChallengeRepo) Delete(_ context.Context, phone string) error {
	delete(r.challenges, phone)
	return nil
}

type memoryUserRepo struct {
	upserts int
}

func (r *memoryUserRepo) UpsertByPhone(_ context.Context, phone string) (*User, error) {
	r.upserts++
	return &User{ID: "user-1", Phone: phone}, nil
}

type capturingSender struct {
	phone string
	code  string
	err   error
}

func (s *capturingSender) Send(_ context.Context, phone, code string) error {
	s.phone = phone
	s.code = code
	return s.err
}

func TestRequestStoresHashedCodeAndSends(t *testing.T) {
	challenges := newMemoryChallengeRepo()
	sender := &capturingSender{}
	service := NewService(challenges, &memoryUserRepo{}, sender, "secret", time.Minute, 3, nil)

	if err := service.Request(context.Background(), "+91 98765-43210"); err != nil {
		t.Fatalf("Request() error = %v", err)
	}

	if sender.phone != "+919876543210" {
		t.Errorf("sent to %q, want the normalized number", sender.phone)
	}
	if len(sender.code) != 6 {
		t.Errorf("code %q is not 6 digits", sender.code)
	}

	challenge, err := challenges.FindByPhone(context.Background(), "+919876543210")
	if err != nil {
		t.Fatalf("challenge was not stored: %v", err)
	}
	if challenge.CodeHash == sender.code {
		t.Error("code must be stored hashed, not in the clear")
	}
	if challenge.CodeHash != HashCode(sender.code, "secret") {
		t.Error("stored hash does not match the sent code")
	}
}

func TestRequestRejectsInvalidPhone(t *testing.T) {
	service := NewService(newMemoryChallengeRepo(), &memoryUserRepo{}, &capturingSender{}, "secret", 0, 0, nil)

	if err := service.Request(context.Background(), "not-a-number"); !errors.Is(err, ErrInvalidPhone) {
		t.Errorf("Request() error = %v, want ErrInvalidPhone", err)
	}
}

func TestVerifySuccessConsumesChallenge(t *testing.T) {
	challenges := newMemoryChallengeRepo()
	users := &memoryUserRepo{}
	sender := &capturingSender{}
	service := NewService(challenges, users, sender, "secret", time.Minute, 3, nil)

	if err := service.Request(context.Background(), "+919876543210"); err != nil {
		t.Fatalf("Request() error = %v", err)
	}

	user, err := service.Verify(context.Background(), "+919876543210", sender.code)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if user.Phone != "+919876543210" {
		t.Errorf("user phone = %q", user.Phone)
	}
	if users.upserts != 1 {
		t.Errorf("upserts = %d, want 1", users.upserts)
	}

	if _, err := service.Verify(context.Background(), "+919876543210", sender.code); !errors.Is(err, ErrChallengeNotFound) {
		t.Errorf("second Verify() error = %v, want ErrChallengeNotFound", err)
	}
}

func TestVerifyWrongCodeCountsAttempts(t *testing.T) {
	challenges := newMemoryChallengeRepo()
	sender := &capturingSender{}
	service := NewService(challenges, &memoryUserRepo{}, sender, "secret", time.Minute, 2, nil)

	if err := service.Request(context.Background(), "+919876543210"); err != nil {
		t.Fatalf("Request() error = %v", err)
	}

	if _, err := service.Verify(context.Background(), "+919876543210", "000000"); !errors.Is(err, ErrCodeMismatch) {
		t.Fatalf("first wrong Verify() error = %v, want ErrCodeMismatch", err)
	}
	if _, err := service.Verify(context.Background(), "+919876543210", "000000"); !errors.Is(err, ErrTooManyAttempts) {
		t.Fatalf("second wrong Verify() error = %v, want ErrTooManyAttempts", err)
	}
	// The right code no longer works once the attempt budget is spent.
	if _, err := service.Verify(context.Background(), "+919876543210", sender.code); !errors.Is(err, ErrTooManyAttempts) {
		t.Errorf("Verify() after lockout error = %v, want ErrTooManyAttempts", err)
	}
}

func TestVerifyExpiredChallenge(t *testing.T) {
	challenges := newMemoryChallengeRepo()
	service := NewService(challenges, &memoryUserRepo{}, &capturingSender{}, "secret", time.Minute, 3, nil)

	now := time.Now().UTC()
	challenge := &Challenge{
		Phone:     "+919876543210",
		CodeHash:  HashCode("123456", "secret"),
		ExpiresAt: now.Add(-time.Second),
		CreatedAt: now.Add(-10 * time.Minute),
	}
	if err := challenges.Save(context.Background(), challenge); err != nil {
		t.Fatal(err)
	}

	if _, err := service.Verify(context.Background(), "+919876543210", "123456"); !errors.Is(err, ErrChallengeExpired) {
		t.Fatalf("Verify() error = %v, want ErrChallengeExpired", err)
	}
	if _, ok := challenges.challenges["+919876543210"]; ok {
		t.Error("expired challenge must be deleted")
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"+919876543210", "+919876543210", true},
		{"98765 43210", "9876543210", true},
		{"98-76-54-32", "98765432", true},
		{"12345", "", false},
		{"abc", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, err := NormalizePhone(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("NormalizePhone(%q) = (%q, %v), want (%q, ok=%v)", tt.in, got, err, tt.want, tt.ok)
		}
	}
}
