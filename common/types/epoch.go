package types

import (
	"strconv"

	"github.com/spacemeshos/go-scale"
)

// EpochID is the running epoch number. Certificates expire at epoch
// boundaries, so this is the granularity at which registry entries age out.
type EpochID uint32

// Add returns the epoch n epochs after e.
func (e EpochID) Add(n uint32) EpochID {
	return e + EpochID(n)
}

// String returns a string representation of the epoch id.
func (e EpochID) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

// EncodeScale implements scale codec interface.
func (e *EpochID) EncodeScale(enc *scale.Encoder) (int, error) {
	return scale.EncodeCompact32(enc, uint32(*e))
}

// DecodeScale implements scale codec interface.
func (e *EpochID) DecodeScale(dec *scale.Decoder) (int, error) {
	value, n, err := scale.DecodeCompact32(dec)
	if err != nil {
		return n, err
	}
	*e = EpochID(value)
	return n, nil
}
