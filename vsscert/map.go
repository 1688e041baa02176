package vsscert

import (
	"bytes"
	"maps"
	"slices"

	"github.com/randbeacon/go-randbeacon/common/types"
)

// Map is a collection of VSS certificates keyed by stakeholder identity.
// Entries are always stored under the id derived from their signing key;
// there is no way to insert a certificate under a foreign key.
//
// Map has value semantics: mutating operations return a new Map and leave
// the receiver untouched, so distinct Map values are safe to use from
// distinct goroutines without synchronization. Synchronizing read-modify-
// write sequences on a shared instance is the owner's job (see Registry).
//
// The three constructors guarantee different subsets of the registry
// invariants. A map built from an untrusted batch must pass Validate before
// it is accepted; Insert and Delete preserve the invariants incrementally
// after that.
type Map struct {
	certs map[types.StakeholderID]*Certificate
}

// NewMap builds a map from certs, keying each certificate on its derived id.
// If two certificates derive the same id, the later one in slice order wins.
// Deliberately last-write-wins; no invariant on signing key or VSS key
// uniqueness is guaranteed, callers ingesting untrusted batches must run
// Validate afterward.
func NewMap(certs []*Certificate) Map {
	m := make(map[types.StakeholderID]*Certificate, len(certs))
	for _, cert := range certs {
		m[cert.ID()] = cert
	}
	return Map{certs: m}
}

// NewMapLossy drops certificates announcing a VSS key already announced
// earlier in the slice, then builds the map like NewMap. The result is
// unique by VSS key by construction. Duplicate signing keys with distinct
// VSS keys are not filtered; used when best-effort inclusion is preferred
// to strict rejection.
func NewMapLossy(certs []*Certificate) Map {
	seen := make(map[string]struct{}, len(certs))
	filtered := make([]*Certificate, 0, len(certs))
	for _, cert := range certs {
		key := string(cert.VssKey)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		filtered = append(filtered, cert)
	}
	return NewMap(filtered)
}

// SingletonMap builds a one-entry map. It trivially satisfies all registry
// invariants except signature validity.
func SingletonMap(cert *Certificate) Map {
	return NewMap([]*Certificate{cert})
}

// Member reports whether id has a certificate in the map.
func (m Map) Member(id types.StakeholderID) bool {
	_, ok := m.certs[id]
	return ok
}

// Lookup returns the certificate stored for id, if any.
func (m Map) Lookup(id types.StakeholderID) (*Certificate, bool) {
	cert, ok := m.certs[id]
	return cert, ok
}

// Len returns the number of certificates in the map.
func (m Map) Len() int {
	return len(m.certs)
}

// IDs returns the stakeholder ids present in the map, sorted.
func (m Map) IDs() []types.StakeholderID {
	ids := make([]types.StakeholderID, 0, len(m.certs))
	for id := range m.certs {
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids
}

// Certificates returns the certificates in the map ordered by stakeholder id.
func (m Map) Certificates() []*Certificate {
	certs := make([]*Certificate, 0, len(m.certs))
	for _, id := range m.IDs() {
		certs = append(certs, m.certs[id])
	}
	return certs
}

// Insert returns a map with cert stored under its derived id. Every existing
// entry sharing cert's signing key or VSS key is evicted first, keeping the
// map unique on both; the evicted ids are returned (sorted) so the caller can
// retract obligations for those stakeholders without re-scanning. Re-inserting
// a stakeholder's own certificate evicts and replaces the previous one, and
// the stakeholder's id appears in the evicted list.
//
// Insert never fails. It does not verify the certificate signature; callers
// must check it beforehand.
func (m Map) Insert(cert *Certificate) (Map, []types.StakeholderID) {
	next := maps.Clone(m.certs)
	if next == nil {
		next = make(map[types.StakeholderID]*Certificate, 1)
	}
	var evicted []types.StakeholderID
	for id, existing := range next {
		if existing.SigningKey == cert.SigningKey || existing.VssKey.Equal(cert.VssKey) {
			delete(next, id)
			evicted = append(evicted, id)
		}
	}
	next[cert.ID()] = cert
	sortIDs(evicted)
	return Map{certs: next}, evicted
}

// Delete returns a map without an entry for id. Deleting an absent id is a
// no-op, not an error.
func (m Map) Delete(id types.StakeholderID) Map {
	if _, ok := m.certs[id]; !ok {
		return m
	}
	next := maps.Clone(m.certs)
	delete(next, id)
	return Map{certs: next}
}

func sortIDs(ids []types.StakeholderID) {
	slices.SortFunc(ids, func(a, b types.StakeholderID) int {
		return bytes.Compare(a[:], b[:])
	})
}
