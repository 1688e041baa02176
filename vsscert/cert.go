package vsscert

import (
	"github.com/randbeacon/go-randbeacon/codec"
	"github.com/randbeacon/go-randbeacon/common/types"
	"github.com/randbeacon/go-randbeacon/hash"
	"github.com/randbeacon/go-randbeacon/signing"
)

//go:generate scalegen

// CertificateBody is Certificate without the signature and the signing key.
// To generate the certificate signature, this structure is serialized and
// signed under the VSS_CERT domain.
type CertificateBody struct {
	// VssKey is the one-time VSS public key announced by the certificate.
	// Opaque to the registry.
	VssKey types.VssPublicKey
	// ExpiryEpoch is the last epoch for which the certificate is valid.
	ExpiryEpoch types.EpochID
}

// Certificate is a stakeholder's signed announcement binding a one-time VSS
// public key to their identity until ExpiryEpoch. Certificates are immutable
// once created. Construction does not verify the signature; an unverified
// certificate object can exist, validity is checked by SignatureValid.
type Certificate struct {
	CertificateBody

	// SigningKey is the stakeholder's public signing key. The registry
	// identity is its hash, see ID.
	SigningKey types.SignerPublicKey
	Signature  types.EdSignature
}

// NewCertificate creates a certificate announcing vssKey until expiry,
// signed by signer.
func NewCertificate(signer *signing.EdSigner, vssKey types.VssPublicKey, expiry types.EpochID) *Certificate {
	cert := &Certificate{
		CertificateBody: CertificateBody{
			VssKey:      vssKey,
			ExpiryEpoch: expiry,
		},
		SigningKey: signer.SignerPublicKey(),
	}
	cert.Signature = signer.Sign(signing.VSS_CERT, cert.SignedBytes())
	return cert
}

// ID derives the registry key of the certificate from its signing key. A
// certificate can never be stored under a foreign identity because Map keys
// entries on this value only.
func (c *Certificate) ID() types.StakeholderID {
	return types.StakeholderIDFromKey(c.SigningKey)
}

// SignedBytes serializes the part of the certificate covered by the signature.
func (c *Certificate) SignedBytes() []byte {
	return codec.MustEncode(&c.CertificateBody)
}

// SignatureValid reports whether the certificate's embedded signature was
// produced over its body by the holder of its embedded signing key. Pure, no
// side effects.
func (c *Certificate) SignatureValid(verifier edVerifier) bool {
	return verifier.Verify(signing.VSS_CERT, c.SigningKey, c.SignedBytes(), c.Signature)
}

// Hash returns the hash of the full certificate including the signature.
func (c *Certificate) Hash() types.Hash32 {
	h := hash.GetHasher()
	defer hash.PutHasher(h)
	codec.MustEncodeTo(h, c)
	var rst types.Hash32
	h.Sum(rst[:0])
	return rst
}
