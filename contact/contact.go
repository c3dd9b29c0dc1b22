// Package contact validates contact form submissions and acknowledges them.
// Nothing is stored or mailed; accepted submissions are logged.
package contact

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultDelay simulates the latency of a real backend.
const DefaultDelay = 500 * time.Millisecond

// SuccessMessage is returned with every accepted submission.
const SuccessMessage = "Thank you for your message! We will get back to you soon."

// Validation errors. Their text is shown to visitors as is, so it is
// written as a sentence.
var (
	// ErrMissingFields is returned when name, email or message is empty.
	ErrMissingFields = errors.New("All fields are required")
	// ErrInvalidEmail is returned when the email address is malformed.
	ErrInvalidEmail = errors.New("Email is invalid")
)

var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Field length limits.
const (
	maxNameLen    = 200
	maxEmailLen   = 254
	maxPhoneLen   = 40
	maxSubjectLen = 200
	maxMessageLen = 5000
)

// FieldError reports a field that exceeds its length limit.
type FieldError struct {
	Field string
	Max   int
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s exceeds maximum length of %d", e.Field, e.Max)
}

// Submission is one contact form post. Phone and Subject are optional.
type Submission struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Phone   string `json:"phone,omitempty" form:"phone"`
	Subject string `json:"subject,omitempty" form:"subject"`
	Message string `json:"message" form:"message"`
}

// Normalize trims surrounding whitespace from every field.
func (s *Submission) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(s.Email)
	s.Phone = strings.TrimSpace(s.Phone)
	s.Subject = strings.TrimSpace(s.Subject)
	s.Message = strings.TrimSpace(s.Message)
}

// Validate checks required fields, the email shape and field lengths.
func (s Submission) Validate() error {
	if s.Name == "" || s.Email == "" || s.Message == "" {
		return ErrMissingFields
	}
	if !reEmail.MatchString(s.Email) {
		return ErrInvalidEmail
	}
	for _, f := range []struct {
		name string
		val  string
		max  int
	}{
		{"name", s.Name, maxNameLen},
		{"email", s.Email, maxEmailLen},
		{"phone", s.Phone, maxPhoneLen},
		{"subject", s.Subject, maxSubjectLen},
		{"message", s.Message, maxMessageLen},
	} {
		if len(f.val) > f.max {
			return &FieldError{Field: f.name, Max: f.max}
		}
	}
	return nil
}

// Receipt acknowledges an accepted submission.
type Receipt struct {
	ID         string     `json:"id"`
	Message    string     `json:"message"`
	Payload    Submission `json:"payload"`
	ReceivedAt time.Time  `json:"received_at"`
}

// Logger is the subset of echo.Logger used by Service.
type Logger interface {
	Infof(format string, args ...interface{})
}

// Service accepts submissions after a simulated delay.
type Service struct {
	delay  time.Duration
	logger Logger
	now    func() time.Time
}

// NewService returns a Service. A negative delay disables the wait.
func NewService(delay time.Duration, logger Logger) *Service {
	if delay < 0 {
		delay = 0
	}
	return &Service{delay: delay, logger: logger, now: time.Now}
}

// Submit validates sub and, once the delay elapses, returns a Receipt.
// Validation errors return immediately; a cancelled ctx returns ctx.Err().
func (s *Service) Submit(ctx context.Context, sub Submission) (Receipt, error) {
	sub.Normalize()
	if err := sub.Validate(); err != nil {
		return Receipt{}, err
	}
	if s.delay > 0 {
		t := time.NewTimer(s.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return Receipt{}, ctx.Err()
		case <-t.C:
		}
	}
	r := Receipt{
		ID:         uuid.NewString(),
		Message:    SuccessMessage,
		Payload:    sub,
		ReceivedAt: s.now(),
	}
	if s.logger != nil {
		s.logger.Infof("contact submission %s from %q <%s> subject=%q (%d chars)",
			r.ID, sub.Name, sub.Email, sub.Subject, len(sub.Message))
	}
	return r, nil
}
