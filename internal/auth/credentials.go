// Package auth hashes and verifies user PINs and manages the
// credential entries of the document.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/pbkdf2"

	"kidtasks/internal/apperr"
	"kidtasks/internal/model"
)

// pinSalt keeps the digest deterministic across runs. Changing it
// invalidates every stored PIN.
var pinSalt = []byte("kidtasks/pin/v1")

const (
	pinIterations = 4096
	pinKeyLen     = 32
	pinRule       = "required,len=6,number"
)

// DigestPIN returns the hex digest stored in place of the raw PIN.
// The digest is one-way and deterministic: the same PIN always yields
// the same digest.
func DigestPIN(pin string) string {
	return hex.EncodeToString(pbkdf2.Key([]byte(pin), pinSalt, pinIterations, pinKeyLen, sha256.New))
}

// NormalizeEmail lower-cases and trims the address used as a user key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type registerInput struct {
	Email string `validate:"required"`
	PIN   string `validate:"required,len=6,number"`
}

// CredentialStore registers users and verifies their PINs against the
// document. It never persists; the caller owns saving.
type CredentialStore struct {
	doc      *model.Document
	validate *validator.Validate
}

func NewCredentialStore(doc *model.Document) *CredentialStore {
	return &CredentialStore{doc: doc, validate: validator.New()}
}

// Register creates a user with an empty child list. Fails on empty
// email or PIN, a PIN that is not exactly 6 ASCII digits, or an email
// that is already registered.
func (s *CredentialStore) Register(email, pin string) error {
	email = NormalizeEmail(email)
	if err := s.validate.Struct(registerInput{Email: email, PIN: pin}); err != nil {
		return pinValidationError(err)
	}
	if _, ok := s.doc.Users[email]; ok {
		return fmt.Errorf("%w: this email is already registered", apperr.ErrValidation)
	}
	s.doc.Users[email] = &model.User{PIN: DigestPIN(pin), Children: []*model.Child{}}
	return nil
}

// Verify succeeds iff a user exists for email and the digest of pin
// matches the stored one. Unknown email and wrong PIN report the same
// generic failure.
func (s *CredentialStore) Verify(email, pin string) error {
	email = NormalizeEmail(email)
	if email == "" || pin == "" {
		return fmt.Errorf("%w: email and PIN cannot be empty", apperr.ErrValidation)
	}
	user, ok := s.doc.Users[email]
	if !ok || user.PIN != DigestPIN(pin) {
		return apperr.ErrAuth
	}
	return nil
}

// ChangePin overwrites the stored digest unconditionally. The caller
// is responsible for having authenticated the session first.
func (s *CredentialStore) ChangePin(email, newPIN string) error {
	email = NormalizeEmail(email)
	if err := s.validate.Var(newPIN, pinRule); err != nil {
		return fmt.Errorf("%w: PIN must be exactly 6 digits", apperr.ErrValidation)
	}
	user, ok := s.doc.Users[email]
	if !ok {
		return fmt.Errorf("%w: user %s", apperr.ErrNotFound, email)
	}
	user.PIN = DigestPIN(newPIN)
	return nil
}

// pinValidationError renders the first field error in the wording the
// UI shows to parents.
func pinValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch {
		case fe.Field() == "Email":
			return fmt.Errorf("%w: email cannot be empty", apperr.ErrValidation)
		case fe.Tag() == "required":
			return fmt.Errorf("%w: PIN cannot be empty", apperr.ErrValidation)
		default:
			return fmt.Errorf("%w: PIN must be exactly 6 digits", apperr.ErrValidation)
		}
	}
	return fmt.Errorf("%w: %v", apperr.ErrValidation, err)
}
