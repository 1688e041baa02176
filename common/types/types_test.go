package types

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/randbeacon/go-randbeacon/hash"
)

func TestStakeholderIDFromKey(t *testing.T) {
	key := BytesToSignerPublicKey([]byte("some ed25519 public key material!"))
	id := StakeholderIDFromKey(key)
	expected := hash.Sum(key[:])
	require.Equal(t, expected[:], id.Bytes())
	// derivation is deterministic
	require.Equal(t, id, StakeholderIDFromKey(key))
}

func TestHash32_TextRoundTrip(t *testing.T) {
	h := CalcHash32([]byte("payload"))
	text, err := h.MarshalText()
	require.NoError(t, err)

	var decoded Hash32
	require.NoError(t, decoded.UnmarshalText(text))
	require.Equal(t, h, decoded)
}

func TestEpochID_Add(t *testing.T) {
	require.Equal(t, EpochID(7), EpochID(5).Add(2))
	require.Equal(t, "7", EpochID(7).String())
}

func TestVssPublicKey_Equal(t *testing.T) {
	a := VssPublicKey([]byte{1, 2, 3})
	b := VssPublicKey([]byte{1, 2, 3})
	c := VssPublicKey([]byte{1, 2, 4})
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.False(t, a.Equal(EmptyVssKey))
}
