package moderation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"postboard/internal/service"
	"postboard/pkg/logger"
)

type VerdictCache interface {
	Get(ctx context.Context, key string) (service.Verdict, bool, error)
	Set(ctx context.Context, key string, v service.Verdict, ttl time.Duration) error
}

// CachedClassifier remembers definite verdicts by content hash. Cache
// failures are logged and otherwise ignored.
type CachedClassifier struct {
	next  service.Classifier
	cache VerdictCache
	ttl   time.Duration
}

func NewCachedClassifier(next service.Classifier, cache VerdictCache, ttl time.Duration) *CachedClassifier {
	return &CachedClassifier{
		next:  next,
		cache: cache,
		ttl:   ttl,
	}
}

func (c *CachedClassifier) Classify(ctx context.Context, text string) (service.Verdict, error) {
	log := logger.FromContext(ctx)
	key := contentKey(text)

	v, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		log.Warn("verdict cache get", "error", err)
	} else if ok {
		return v, nil
	}

	v, err = c.next.Classify(ctx, text)
	if err != nil || v == service.VerdictUnknown {
		return v, err
	}

	if err := c.cache.Set(ctx, key, v, c.ttl); err != nil {
		log.Warn("verdict cache set", "error", err)
	}
	return v, nil
}

func contentKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
