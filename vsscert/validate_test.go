package vsscert

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/randbeacon/go-randbeacon/common/types"
)

func TestValidate_OK(t *testing.T) {
	certs := []*Certificate{
		NewCertificate(testSigner(t), types.VssPublicKey("vss key 1"), 5),
		NewCertificate(testSigner(t), types.VssPublicKey("vss key 2"), 5),
		NewCertificate(testSigner(t), types.VssPublicKey("vss key 3"), 7),
	}
	m := NewMap(certs)

	vm, err := Validate(testVerifier(t), m)
	require.NoError(t, err)
	require.Equal(t, m.Len(), vm.Len())
	require.Equal(t, m.IDs(), vm.IDs())
}

func TestValidate_EmptyMap(t *testing.T) {
	vm, err := Validate(testVerifier(t), Map{})
	require.NoError(t, err)
	require.Zero(t, vm.Len())
}

func TestValidate_BadSignature(t *testing.T) {
	good := NewCertificate(testSigner(t), types.VssPublicKey("vss key 1"), 5)
	bad := NewCertificate(testSigner(t), types.VssPublicKey("vss key 2"), 5)
	bad.Signature[0] ^= 0x01

	_, err := Validate(testVerifier(t), NewMap([]*Certificate{good, bad}))
	var sigErr *InvalidSignatureError
	require.ErrorAs(t, err, &sigErr)
	require.Equal(t, bad.ID(), sigErr.ID)
}

func TestValidate_DuplicateVssKey(t *testing.T) {
	vssKey := types.VssPublicKey("shared vss key")
	c1 := NewCertificate(testSigner(t), vssKey, 5)
	c2 := NewCertificate(testSigner(t), vssKey, 5)

	_, err := Validate(testVerifier(t), NewMap([]*Certificate{c1, c2}))
	var dupErr *DuplicateVssKeyError
	require.ErrorAs(t, err, &dupErr)
	require.True(t, dupErr.Key.Equal(vssKey))
	require.ElementsMatch(t,
		[]types.StakeholderID{c1.ID(), c2.ID()},
		[]types.StakeholderID{dupErr.First, dupErr.Second},
	)
}

func TestValidate_DuplicateSigningKey(t *testing.T) {
	// not reachable through the public constructors, which key entries on the
	// derived id; craft the corrupted map directly
	signer := testSigner(t)
	c1 := NewCertificate(signer, types.VssPublicKey("vss key 1"), 5)
	c2 := NewCertificate(signer, types.VssPublicKey("vss key 2"), 5)
	foreign := types.StakeholderID{0xff}

	m := Map{certs: map[types.StakeholderID]*Certificate{
		c1.ID(): c1,
		foreign: c2,
	}}

	_, err := Validate(testVerifier(t), m)
	var dupErr *DuplicateSigningKeyError
	require.ErrorAs(t, err, &dupErr)
	require.Equal(t, signer.SignerPublicKey(), dupErr.Key)
}

func TestValidate_IdentityMismatch(t *testing.T) {
	cert := NewCertificate(testSigner(t), types.VssPublicKey("vss key 1"), 5)
	foreign := types.StakeholderID{0x01, 0x02}

	m := Map{certs: map[types.StakeholderID]*Certificate{foreign: cert}}

	_, err := Validate(testVerifier(t), m)
	var mismatchErr *IdentityMismatchError
	require.ErrorAs(t, err, &mismatchErr)
	require.Equal(t, foreign, mismatchErr.Key)
	require.Equal(t, cert.ID(), mismatchErr.Derived)
}

func TestValidate_IdentityMismatchNeverFiresOnConstructed(t *testing.T) {
	signer := testSigner(t)
	certs := []*Certificate{
		NewCertificate(signer, types.VssPublicKey("vss key 1"), 5),
		NewCertificate(testSigner(t), types.VssPublicKey("vss key 2"), 5),
	}

	built := []Map{
		NewMap(certs),
		NewMapLossy(certs),
		SingletonMap(certs[0]),
	}
	inserted, _ := NewMap(certs).Insert(NewCertificate(testSigner(t), types.VssPublicKey("vss key 3"), 5))
	built = append(built, inserted)

	for _, m := range built {
		_, err := Validate(testVerifier(t), m)
		var mismatchErr *IdentityMismatchError
		require.False(t, errors.As(err, &mismatchErr))
	}
}

func TestValidatedMap_MapIsDetached(t *testing.T) {
	cert := NewCertificate(testSigner(t), types.VssPublicKey("vss key 1"), 5)
	vm, err := Validate(testVerifier(t), SingletonMap(cert))
	require.NoError(t, err)

	raw := vm.Map()
	raw, _ = raw.Insert(NewCertificate(testSigner(t), types.VssPublicKey("vss key 2"), 5))
	require.Equal(t, 2, raw.Len())
	require.Equal(t, 1, vm.Len())
}
