package horizon

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrInvalidTool      = errors.New("invalid tool specification")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrToolNameConflict = errors.New("tool name conflict")
	ErrUnknownTool      = errors.New("unknown tool")

	// ErrLoopLimitExceeded is returned when the model keeps requesting tools beyond the configured loop limit.
	ErrLoopLimitExceeded = errors.New("tool loop limit exceeded")

	// ErrMissingCredential is returned when a command needs an API key and none is stored.
	ErrMissingCredential = errors.New("missing API key")
)

var (
	// ErrTagRateLimit is attached by LLM clients when the remote service rejects a request for rate or quota reasons.
	ErrTagRateLimit = goerr.NewTag("rate_limit")
)

// FailureKind is the category of a failure surfaced to the user from a conversation turn.
type FailureKind int

const (
	// FailureRemote is any failure of the model call that is not otherwise classified.
	FailureRemote FailureKind = iota
	// FailureRateLimit means the credential hit a rate limit or quota.
	FailureRateLimit
	// FailureLoopLimit means the tool loop ran out of rounds.
	FailureLoopLimit
)

func (x FailureKind) String() string {
	switch x {
	case FailureRemote:
		return "remote"
	case FailureRateLimit:
		return "rate_limit"
	case FailureLoopLimit:
		return "loop_limit"
	default:
		return "unknown"
	}
}

var rateLimitKeywords = []string{
	"rate limit",
	"rate-limit",
	"ratelimit",
	"quota",
	"limit",
	"resource_exhausted",
}

// Classify categorizes an error returned by Conversation.Send.
func Classify(err error) FailureKind {
	if err == nil {
		return FailureRemote
	}
	if errors.Is(err, ErrLoopLimitExceeded) {
		return FailureLoopLimit
	}
	if goerr.HasTag(err, ErrTagRateLimit) {
		return FailureRateLimit
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "429") || strings.Contains(msg, strings.ToLower(http.StatusText(http.StatusTooManyRequests))) {
		return FailureRateLimit
	}
	for _, kw := range rateLimitKeywords {
		if strings.Contains(msg, kw) {
			return FailureRateLimit
		}
	}

	return FailureRemote
}

// IsRateLimitStatus reports whether an HTTP status code from a provider means rate or quota exhaustion.
func IsRateLimitStatus(code int) bool {
	return code == http.StatusTooManyRequests
}
