package vsscert

import (
	"fmt"
	"maps"

	"github.com/randbeacon/go-randbeacon/common/types"
)

// Validation failure reasons. Each carries enough detail to identify the
// offending stakeholder id(s), so the consensus layer can report exactly why
// a block's certificate payload was rejected.

// InvalidSignatureError is returned when a stored certificate's signature
// does not verify against its embedded signing key.
type InvalidSignatureError struct {
	ID types.StakeholderID
}

func (e *InvalidSignatureError) Error() string {
	return fmt.Sprintf("certificate signature invalid for stakeholder %s", e.ID)
}

// DuplicateSigningKeyError is returned when two distinct entries share a
// signing key.
type DuplicateSigningKeyError struct {
	Key           types.SignerPublicKey
	First, Second types.StakeholderID
}

func (e *DuplicateSigningKeyError) Error() string {
	return fmt.Sprintf("duplicate signing key %s: stakeholders %s and %s",
		e.Key.ShortString(), e.First, e.Second)
}

// DuplicateVssKeyError is returned when two distinct entries announce the
// same VSS key.
type DuplicateVssKeyError struct {
	Key           types.VssPublicKey
	First, Second types.StakeholderID
}

func (e *DuplicateVssKeyError) Error() string {
	return fmt.Sprintf("duplicate VSS key %s: stakeholders %s and %s",
		e.Key.ShortString(), e.First, e.Second)
}

// IdentityMismatchError is returned when an entry is keyed by an id that is
// not the hash of its certificate's signing key. It indicates either a
// construction bug or a maliciously crafted batch and is never silently
// corrected.
type IdentityMismatchError struct {
	Key     types.StakeholderID
	Derived types.StakeholderID
}

func (e *IdentityMismatchError) Error() string {
	return fmt.Sprintf("identity mismatch: key %s stores certificate whose derived id is %s",
		e.Key, e.Derived)
}

// Validate checks the registry invariants over the whole map:
//   - every certificate's signature verifies against its signing key,
//   - no two entries share a signing key,
//   - no two entries share a VSS key,
//   - every entry is keyed by the id derived from its certificate.
//
// It returns a ValidatedMap on success and the first failure encountered
// otherwise, walking entries in id order so failures are deterministic.
//
// Validate is meant to run once over a batch ingested from an untrusted
// source. Incremental Insert/Delete preserve the uniqueness and identity
// invariants by construction and do not require re-validation; signature
// validity of individually inserted certificates is the caller's
// responsibility.
func Validate(verifier edVerifier, m Map) (ValidatedMap, error) {
	ids := m.IDs()

	for _, id := range ids {
		if !m.certs[id].SignatureValid(verifier) {
			return ValidatedMap{}, &InvalidSignatureError{ID: id}
		}
	}

	bySigningKey := make(map[types.SignerPublicKey]types.StakeholderID, m.Len())
	for _, id := range ids {
		cert := m.certs[id]
		if prev, ok := bySigningKey[cert.SigningKey]; ok {
			return ValidatedMap{}, &DuplicateSigningKeyError{Key: cert.SigningKey, First: prev, Second: id}
		}
		bySigningKey[cert.SigningKey] = id
	}

	byVssKey := make(map[string]types.StakeholderID, m.Len())
	for _, id := range ids {
		cert := m.certs[id]
		if prev, ok := byVssKey[string(cert.VssKey)]; ok {
			return ValidatedMap{}, &DuplicateVssKeyError{Key: cert.VssKey, First: prev, Second: id}
		}
		byVssKey[string(cert.VssKey)] = id
	}

	for _, id := range ids {
		if derived := m.certs[id].ID(); derived != id {
			return ValidatedMap{}, &IdentityMismatchError{Key: id, Derived: derived}
		}
	}

	return ValidatedMap{m: m}, nil
}

// ValidatedMap is a Map that passed Validate. The zero value is an empty
// validated map. Consumers requiring a verified map should take this type;
// it cannot be built from an unchecked Map outside this package.
type ValidatedMap struct {
	m Map
}

// Member reports whether id has a certificate in the map.
func (vm ValidatedMap) Member(id types.StakeholderID) bool {
	return vm.m.Member(id)
}

// Lookup returns the certificate stored for id, if any.
func (vm ValidatedMap) Lookup(id types.StakeholderID) (*Certificate, bool) {
	return vm.m.Lookup(id)
}

// Len returns the number of certificates in the map.
func (vm ValidatedMap) Len() int {
	return vm.m.Len()
}

// IDs returns the stakeholder ids present in the map, sorted.
func (vm ValidatedMap) IDs() []types.StakeholderID {
	return vm.m.IDs()
}

// Certificates returns the certificates in the map ordered by stakeholder id.
func (vm ValidatedMap) Certificates() []*Certificate {
	return vm.m.Certificates()
}

// Map returns a raw copy of the underlying map for further mutation. The
// copy is detached: mutating it does not affect the validated map, and the
// result of mutations is again unvalidated.
func (vm ValidatedMap) Map() Map {
	return Map{certs: maps.Clone(vm.m.certs)}
}
