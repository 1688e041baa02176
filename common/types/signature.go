package types

import (
	"encoding/hex"

	"github.com/spacemeshos/go-scale"
)

const (
	// EdSignatureSize is the size of an ed25519 signature in bytes.
	EdSignatureSize = 64
	// SignerPublicKeySize is the size of an ed25519 public key in bytes.
	SignerPublicKeySize = 32
)

// EdSignature is an ed25519 signature.
type EdSignature [EdSignatureSize]byte

// EmptyEdSignature is a canonical empty EdSignature.
var EmptyEdSignature EdSignature

// String returns a string representation of the signature, for logging purposes.
func (s EdSignature) String() string {
	return hex.EncodeToString(s.Bytes())
}

// Bytes returns the byte representation of the signature.
func (s EdSignature) Bytes() []byte {
	return s[:]
}

// EncodeScale implements scale codec interface.
func (s *EdSignature) EncodeScale(e *scale.Encoder) (int, error) {
	return scale.EncodeByteArray(e, s[:])
}

// DecodeScale implements scale codec interface.
func (s *EdSignature) DecodeScale(d *scale.Decoder) (int, error) {
	return scale.DecodeByteArray(d, s[:])
}

// SignerPublicKey is the public signing key a stakeholder embeds in the
// certificates they issue. The registry identity is derived from it by
// hashing, see StakeholderIDFromKey.
type SignerPublicKey [SignerPublicKeySize]byte

// BytesToSignerPublicKey is a helper to copy a buffer into a SignerPublicKey struct.
func BytesToSignerPublicKey(buf []byte) (key SignerPublicKey) {
	copy(key[:], buf)
	return key
}

// String returns a string representation of the key, for logging purposes.
func (k SignerPublicKey) String() string {
	return hex.EncodeToString(k.Bytes())
}

// ShortString returns the first 5 characters of the key, for logging purposes.
func (k SignerPublicKey) ShortString() string {
	return Shorten(k.String(), 5)
}

// Bytes returns the byte representation of the key.
func (k SignerPublicKey) Bytes() []byte {
	return k[:]
}

// EncodeScale implements scale codec interface.
func (k *SignerPublicKey) EncodeScale(e *scale.Encoder) (int, error) {
	return scale.EncodeByteArray(e, k[:])
}

// DecodeScale implements scale codec interface.
func (k *SignerPublicKey) DecodeScale(d *scale.Decoder) (int, error) {
	return scale.DecodeByteArray(d, k[:])
}
