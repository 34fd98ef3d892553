package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"postboard/pkg/logger"
)

//go:generate mockgen -source=moderation.go -destination=./moderation_mock.go -package=service

type Verdict int

const (
	VerdictUnknown Verdict = iota
	VerdictAcceptable
	VerdictOffensive
)

func (v Verdict) String() string {
	switch v {
	case VerdictAcceptable:
		return "acceptable"
	case VerdictOffensive:
		return "offensive"
	default:
		return "unknown"
	}
}

// Classifier decides whether a piece of user text is offensive.
type Classifier interface {
	Classify(ctx context.Context, text string) (Verdict, error)
}

// FailurePolicy decides what happens to content when the classifier cannot
// produce a verdict.
type FailurePolicy string

const (
	FailClosed FailurePolicy = "fail-closed"
	FailOpen   FailurePolicy = "fail-open"
)

func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch p := FailurePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case FailClosed, FailOpen:
		return p, nil
	case "":
		return FailClosed, nil
	default:
		return "", fmt.Errorf("unknown moderation failure policy %q", s)
	}
}

type ModerationGate struct {
	classifier Classifier
	policy     FailurePolicy
	timeout    time.Duration
}

func NewModerationGate(classifier Classifier, policy FailurePolicy, timeout time.Duration) *ModerationGate {
	if policy == "" {
		policy = FailClosed
	}
	return &ModerationGate{
		classifier: classifier,
		policy:     policy,
		timeout:    timeout,
	}
}

// Check returns ErrModerationRejected for offensive text. When no verdict can
// be obtained it returns ErrModerationUnavailable under FailClosed and nil
// under FailOpen.
func (g *ModerationGate) Check(ctx context.Context, text string) error {
	log := logger.FromContext(ctx)

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	verdict, err := g.classifier.Classify(ctx, text)
	if err == nil {
		switch verdict {
		case VerdictOffensive:
			return ErrModerationRejected
		case VerdictAcceptable:
			return nil
		}
		err = fmt.Errorf("unrecognized verdict %q", verdict)
	}

	if g.policy == FailOpen {
		log.Warn("classifier failed, accepting content", "error", err, "policy", g.policy)
		return nil
	}
	log.Error("classifier failed, rejecting content", "error", err, "policy", g.policy)
	return fmt.Errorf("%w: %v", ErrModerationUnavailable, err)
}
