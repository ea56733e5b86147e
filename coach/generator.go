package coach

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

//go:generate mockgen -source=$GOFILE -destination=generator_mock.go -package=coach

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

type Message struct {
	Role    string
	Content string
}

// Generator turns an ordered list of chat messages into text.
type Generator interface {
	Generate(ctx context.Context, messages []Message) (string, error)
}

// quotaToken is the error type, and message fragment, the provider uses
// when the account has run out of credit.
const quotaToken = "insufficient_quota"

// GenerationError is a failed generation call as reported by the provider.
// Status and Type are zero when the provider did not supply them.
type GenerationError struct {
	Status  int
	Type    string
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	switch {
	case e.Status != 0 && e.Type != "":
		return fmt.Sprintf("generation failed (status %d, %s): %s", e.Status, e.Type, e.Message)
	case e.Status != 0:
		return fmt.Sprintf("generation failed (status %d): %s", e.Status, e.Message)
	default:
		return "generation failed: " + e.Message
	}
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// IsQuotaExhausted reports whether err means the provider refused the call
// for quota or rate-limit reasons: status 429, error type
// insufficient_quota, or a message mentioning insufficient_quota.
func IsQuotaExhausted(err error) bool {
	if err == nil {
		return false
	}

	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		return strings.Contains(strings.ToLower(err.Error()), quotaToken)
	}

	return genErr.Status == http.StatusTooManyRequests ||
		genErr.Type == quotaToken ||
		strings.Contains(strings.ToLower(genErr.Message), quotaToken)
}
