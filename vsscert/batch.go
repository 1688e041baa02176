package vsscert

import (
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/randbeacon/go-randbeacon/codec"
	"github.com/randbeacon/go-randbeacon/common/types"
	"github.com/randbeacon/go-randbeacon/hash"
	"github.com/randbeacon/go-randbeacon/signing"
)

var (
	// ErrMalformedBatch is returned when an encoded batch does not decode.
	ErrMalformedBatch = errors.New("malformed certificate batch")
	// ErrBatchTooLarge is returned when a batch exceeds the configured size.
	ErrBatchTooLarge = errors.New("certificate batch too large")
)

// BatchVerifier validates certificate batches extracted from blocks. Blocks
// on competing forks mostly carry the same certificates, so signatures that
// verified once are remembered in an LRU cache and the ed25519 work is
// skipped on re-ingestion. Structural checks are cheap and always re-run.
type BatchVerifier struct {
	logger   *zap.Logger
	verifier edVerifier
	cache    *lru.Cache[types.Hash32, struct{}]
	cfg      Config
}

// NewBatchVerifier creates a BatchVerifier on top of verifier.
func NewBatchVerifier(verifier edVerifier, cfg Config, logger *zap.Logger) (*BatchVerifier, error) {
	cache, err := lru.New[types.Hash32, struct{}](cfg.VerifiedCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create verified cache: %w", err)
	}
	return &BatchVerifier{
		logger:   logger,
		verifier: verifier,
		cache:    cache,
		cfg:      cfg,
	}, nil
}

// DecodeBatch decodes a scale-encoded certificate slice, enforcing the
// configured batch size limit.
func (bv *BatchVerifier) DecodeBatch(data []byte) ([]*Certificate, error) {
	decoded, err := codec.DecodeSlice[Certificate](data)
	if err != nil {
		malformedError.Inc()
		return nil, fmt.Errorf("%w: %w", ErrMalformedBatch, err)
	}
	if uint32(len(decoded)) > bv.cfg.MaxBatchSize {
		batchLimitError.Inc()
		return nil, fmt.Errorf("%w: %d certificates, limit %d", ErrBatchTooLarge, len(decoded), bv.cfg.MaxBatchSize)
	}
	certs := make([]*Certificate, len(decoded))
	for i := range decoded {
		certs[i] = &decoded[i]
	}
	return certs, nil
}

// VerifyBatch builds a map from certs and validates it. The rejection is
// terminal for the batch: the caller decides whether to drop it entirely or
// filter and resubmit.
func (bv *BatchVerifier) VerifyBatch(certs []*Certificate) (ValidatedMap, error) {
	vm, err := Validate(cachingVerifier{inner: bv.verifier, cache: bv.cache}, NewMap(certs))
	if err != nil {
		bv.logger.Warn("certificate batch rejected", zap.Int("certificates", len(certs)), zap.Error(err))
		countValidationError(err)
		return ValidatedMap{}, err
	}
	validatedBatches.Inc()
	bv.logger.Debug("certificate batch validated", zap.Int("certificates", vm.Len()))
	return vm, nil
}

func countValidationError(err error) {
	var (
		sigErr      *InvalidSignatureError
		signKeyErr  *DuplicateSigningKeyError
		vssErr      *DuplicateVssKeyError
		identityErr *IdentityMismatchError
	)
	switch {
	case errors.As(err, &sigErr):
		signatureError.Inc()
	case errors.As(err, &signKeyErr):
		signingKeyError.Inc()
	case errors.As(err, &vssErr):
		vssKeyError.Inc()
	case errors.As(err, &identityErr):
		identityError.Inc()
	}
}

// cachingVerifier skips signature verification for (domain, key, message,
// signature) tuples that verified before. Only positive results are cached.
type cachingVerifier struct {
	inner edVerifier
	cache *lru.Cache[types.Hash32, struct{}]
}

func (cv cachingVerifier) Verify(d signing.Domain, key types.SignerPublicKey, msg []byte, sig types.EdSignature) bool {
	cacheKey := types.Hash32(hash.Sum([]byte{byte(d)}, key.Bytes(), msg, sig.Bytes()))
	if cv.cache.Contains(cacheKey) {
		return true
	}
	if !cv.inner.Verify(d, key, msg, sig) {
		return false
	}
	cv.cache.Add(cacheKey, struct{}{})
	return true
}
