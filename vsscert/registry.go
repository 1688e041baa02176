package vsscert

import (
	"sync"

	"go.uber.org/zap"

	"github.com/randbeacon/go-randbeacon/common/types"
)

// Registry owns the live certificate map for the running protocol and ages
// entries out as epochs advance. It is the single writer required by the
// map's concurrency contract: all read-modify-write sequences on the shared
// map go through its mutex, while the Map values it hands out stay pure.
//
// Certificates expired by an epoch advance are retained for a configurable
// number of epochs so a chain rollback can restore them.
type Registry struct {
	logger *zap.Logger
	cfg    Config

	mu   sync.Mutex
	live Map
	// ids of live certificates bucketed by the epoch after which they expire.
	byExpiry map[types.EpochID][]types.StakeholderID
	// certificates dropped by AdvanceEpoch, bucketed by the epoch that
	// dropped them, retained for cfg.RollbackDepth epochs.
	dropped   map[types.EpochID][]*Certificate
	lastEpoch types.EpochID
}

// NewRegistry creates an empty registry.
func NewRegistry(cfg Config, logger *zap.Logger) *Registry {
	return &Registry{
		logger:   logger,
		cfg:      cfg,
		byExpiry: make(map[types.EpochID][]types.StakeholderID),
		dropped:  make(map[types.EpochID][]*Certificate),
	}
}

// Adopt replaces the live map with a validated one, e.g. after ingesting the
// certificate payload of an epoch boundary block.
func (r *Registry) Adopt(vm ValidatedMap) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.live = vm.Map()
	r.byExpiry = make(map[types.EpochID][]types.StakeholderID)
	for _, cert := range r.live.Certificates() {
		r.index(cert)
	}
	registrySize.Set(float64(r.live.Len()))
}

// Add inserts cert into the live map and returns the ids evicted to keep
// signing keys and VSS keys unique. The certificate signature must have been
// checked by the caller; Add does not verify it.
func (r *Registry) Add(cert *Certificate) []types.StakeholderID {
	r.mu.Lock()
	defer r.mu.Unlock()
	next, evicted := r.live.Insert(cert)
	for _, id := range evicted {
		if old, ok := r.live.Lookup(id); ok {
			r.unindex(old)
		}
	}
	r.live = next
	r.index(cert)
	if len(evicted) > 0 {
		insertEvictions.Add(float64(len(evicted)))
		r.logger.Info("certificate insert evicted stakeholders",
			zap.Stringer("stakeholder", cert.ID()),
			zap.Int("evicted", len(evicted)),
		)
	}
	registrySize.Set(float64(r.live.Len()))
	return evicted
}

// Remove deletes the certificate for id, if any.
func (r *Registry) Remove(id types.StakeholderID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cert, ok := r.live.Lookup(id); ok {
		r.unindex(cert)
	}
	r.live = r.live.Delete(id)
	registrySize.Set(float64(r.live.Len()))
}

// Get returns the live certificate for id, if any.
func (r *Registry) Get(id types.StakeholderID) (*Certificate, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.live.Lookup(id)
}

// Has reports whether id has a live certificate.
func (r *Registry) Has(id types.StakeholderID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.live.Member(id)
}

// Snapshot returns the current live map. The returned value is detached from
// the registry.
func (r *Registry) Snapshot() Map {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Map mutations copy before writing, so handing out the value is safe.
	return r.live
}

// AdvanceEpoch moves the registry to epoch and drops every certificate whose
// expiry epoch precedes it. The dropped certificates are returned and
// retained for RollbackDepth epochs. Advancing to the current or an older
// epoch is a no-op.
func (r *Registry) AdvanceEpoch(epoch types.EpochID) []*Certificate {
	r.mu.Lock()
	defer r.mu.Unlock()
	if epoch <= r.lastEpoch {
		return nil
	}
	var expired []*Certificate
	for expiry, ids := range r.byExpiry {
		if expiry >= epoch {
			continue
		}
		for _, id := range ids {
			if cert, ok := r.live.Lookup(id); ok {
				expired = append(expired, cert)
				r.live = r.live.Delete(id)
			}
		}
		delete(r.byExpiry, expiry)
	}
	if len(expired) > 0 {
		r.dropped[epoch] = expired
		expiredCertificates.Add(float64(len(expired)))
		r.logger.Info("expired certificates at epoch advance",
			zap.Stringer("epoch", epoch),
			zap.Int("expired", len(expired)),
		)
	}
	for droppedAt := range r.dropped {
		if droppedAt.Add(r.cfg.RollbackDepth) < epoch {
			delete(r.dropped, droppedAt)
		}
	}
	r.lastEpoch = epoch
	registrySize.Set(float64(r.live.Len()))
	return expired
}

// Rollback moves the registry back to epoch, restoring certificates that
// were dropped by epoch advances past it. Restores go through Insert, so a
// stakeholder who re-announced after the expiry keeps their newer
// certificate.
func (r *Registry) Rollback(epoch types.EpochID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if epoch >= r.lastEpoch {
		return
	}
	for droppedAt, certs := range r.dropped {
		if droppedAt <= epoch {
			continue
		}
		for _, cert := range certs {
			if r.live.Member(cert.ID()) {
				continue
			}
			next, _ := r.live.Insert(cert)
			r.live = next
			r.index(cert)
		}
		delete(r.dropped, droppedAt)
	}
	r.logger.Info("registry rolled back",
		zap.Stringer("epoch", epoch),
		zap.Int("live", r.live.Len()),
	)
	r.lastEpoch = epoch
	registrySize.Set(float64(r.live.Len()))
}

func (r *Registry) index(cert *Certificate) {
	r.byExpiry[cert.ExpiryEpoch] = append(r.byExpiry[cert.ExpiryEpoch], cert.ID())
}

func (r *Registry) unindex(cert *Certificate) {
	ids := r.byExpiry[cert.ExpiryEpoch]
	for i, id := range ids {
		if id == cert.ID() {
			r.byExpiry[cert.ExpiryEpoch] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	if len(r.byExpiry[cert.ExpiryEpoch]) == 0 {
		delete(r.byExpiry, cert.ExpiryEpoch)
	}
}
