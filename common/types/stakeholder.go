package types

import (
	"encoding/hex"

	"github.com/spacemeshos/go-scale"

	"github.com/randbeacon/go-randbeacon/hash"
)

const (
	// StakeholderIDSize in bytes.
	StakeholderIDSize = Hash32Length
)

// StakeholderID identifies a protocol participant. It is the blake3 hash of
// the participant's public signing key, never an independently chosen value.
type StakeholderID Hash32

// BytesToStakeholderID is a helper to copy a buffer into a StakeholderID struct.
func BytesToStakeholderID(buf []byte) (id StakeholderID) {
	copy(id[:], buf)
	return id
}

// StakeholderIDFromKey derives the registry identity of the holder of a
// public signing key.
func StakeholderIDFromKey(key SignerPublicKey) StakeholderID {
	return StakeholderID(hash.Sum(key[:]))
}

// String returns a string representation of the StakeholderID, for logging purposes.
// It implements the Stringer interface.
func (id StakeholderID) String() string {
	return hex.EncodeToString(id.Bytes())
}

// Bytes returns the byte representation of the id.
func (id StakeholderID) Bytes() []byte {
	return id[:]
}

// ShortString returns the first 5 characters of the ID, for logging purposes.
func (id StakeholderID) ShortString() string {
	return Shorten(id.String(), 5)
}

// EmptyStakeholderID is a canonical empty StakeholderID.
var EmptyStakeholderID StakeholderID

// EncodeScale implements scale codec interface.
func (id *StakeholderID) EncodeScale(e *scale.Encoder) (int, error) {
	return scale.EncodeByteArray(e, id[:])
}

// DecodeScale implements scale codec interface.
func (id *StakeholderID) DecodeScale(d *scale.Decoder) (int, error) {
	return scale.DecodeByteArray(d, id[:])
}
