package types

import (
	"bytes"

	"github.com/spacemeshos/go-scale"

	"github.com/randbeacon/go-randbeacon/common/util"
)

// MaxVssKeySize bounds the encoded size of a VssPublicKey on the wire. The
// key is opaque to the registry, but it still has to fit in a block payload.
const MaxVssKeySize = 128

// VssPublicKey is the opaquely-encoded public key a stakeholder announces for
// the secret-sharing scheme. The registry never interprets it; keys are only
// compared for equality.
type VssPublicKey []byte

// EmptyVssKey is a canonical empty VssPublicKey.
var EmptyVssKey = VssPublicKey{}

// Hex converts the key to a hex string.
func (v VssPublicKey) Hex() string { return util.Encode(v) }

// String implements the stringer interface and is used also by the logger when
// doing full logging into a file.
func (v VssPublicKey) String() string { return v.Hex() }

// ShortString returns the first characters of the key, usually for logging purposes.
func (v VssPublicKey) ShortString() string {
	str := v.Hex()
	l := len(str)
	return Shorten(str[min(2, l):], 10)
}

// Bytes gets the byte representation of the underlying key.
func (v VssPublicKey) Bytes() []byte {
	return v
}

// Equal returns true if the other key is equal to this one.
func (v VssPublicKey) Equal(other VssPublicKey) bool {
	return bytes.Equal(v, other)
}

// HexToVssKey sets the byte representation of s to a VssPublicKey.
func HexToVssKey(s string) VssPublicKey {
	return util.FromHex(s)
}

// EncodeScale implements scale codec interface.
func (v *VssPublicKey) EncodeScale(e *scale.Encoder) (int, error) {
	return scale.EncodeByteSliceWithLimit(e, *v, MaxVssKeySize)
}

// DecodeScale implements scale codec interface.
func (v *VssPublicKey) DecodeScale(d *scale.Decoder) (int, error) {
	value, n, err := scale.DecodeByteSliceWithLimit(d, MaxVssKeySize)
	if err != nil {
		return n, err
	}
	*v = value
	return n, nil
}
