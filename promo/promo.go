// Package promo holds the per-session promo code state. Codes are
// generated and validated entirely in-process and are never persisted.
package promo

import (
	"crypto/rand"
	"errors"
	"strings"
)

var (
	// ErrMissingCode signals an empty code input; applied state is untouched.
	ErrMissingCode = errors.New("promo code required")
	// ErrInvalidCode signals input that does not match the session code.
	ErrInvalidCode = errors.New("invalid promo code")
)

const (
	codeLength = 8
	charset    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Session is one user session's promo state: a generated code the UI can
// display, and whether the user has applied it.
type Session struct {
	code    string
	applied bool
}

// NewSession generates a fresh 8-character code.
func NewSession() *Session {
	return &Session{code: generateCode()}
}

func generateCode() string {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the process is in no state to serve.
		panic(err)
	}
	for i, b := range buf {
		buf[i] = charset[int(b)%len(charset)]
	}
	return string(buf)
}

// Code returns the session's generated code.
func (s *Session) Code() string {
	return s.code
}

// Apply validates the user's input against the session code. Comparison
// is case-insensitive (input is uppercased). A match marks the promo as
// applied; anything else leaves the applied state unchanged.
func (s *Session) Apply(input string) error {
	code := strings.ToUpper(strings.TrimSpace(input))
	if code == "" {
		return ErrMissingCode
	}
	if code != s.code {
		return ErrInvalidCode
	}
	s.applied = true
	return nil
}

// Remove clears the applied state. Safe to call when nothing is applied.
func (s *Session) Remove() {
	s.applied = false
}

// Applied reports whether the code is applied, and which code.
func (s *Session) Applied() (string, bool) {
	if !s.applied {
		return "", false
	}
	return s.code, true
}
