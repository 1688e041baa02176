package vsscert

import (
	"github.com/randbeacon/go-randbeacon/common/types"
	"github.com/randbeacon/go-randbeacon/signing"
)

//go:generate mockgen -typed -package=mocks -destination=./mocks/mocks.go -source=./interface.go

// edVerifier checks domain-separated signatures. Satisfied by
// *signing.EdVerifier; the registry treats the scheme as opaque.
type edVerifier interface {
	Verify(d signing.Domain, key types.SignerPublicKey, msg []byte, sig types.EdSignature) bool
}
