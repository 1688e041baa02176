package vsscert

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/randbeacon/go-randbeacon/common/types"
)

func testRegistry(tb testing.TB) *Registry {
	tb.Helper()
	return NewRegistry(UnitTestConfig(), zaptest.NewLogger(tb))
}

func TestRegistry_AddAndGet(t *testing.T) {
	r := testRegistry(t)
	cert := NewCertificate(testSigner(t), types.VssPublicKey("vss key 1"), 5)

	evicted := r.Add(cert)
	require.Empty(t, evicted)
	require.True(t, r.Has(cert.ID()))

	got, ok := r.Get(cert.ID())
	require.True(t, ok)
	require.Equal(t, cert, got)
}

func TestRegistry_AddEvicts(t *testing.T) {
	r := testRegistry(t)
	vssKey := types.VssPublicKey("shared vss key")
	other := NewCertificate(testSigner(t), vssKey, 5)
	r.Add(other)

	claimant := NewCertificate(testSigner(t), vssKey, 5)
	evicted := r.Add(claimant)
	require.Equal(t, []types.StakeholderID{other.ID()}, evicted)
	require.False(t, r.Has(other.ID()))
	require.True(t, r.Has(claimant.ID()))
}

func TestRegistry_Remove(t *testing.T) {
	r := testRegistry(t)
	cert := NewCertificate(testSigner(t), types.VssPublicKey("vss key 1"), 5)
	r.Add(cert)

	r.Remove(cert.ID())
	require.False(t, r.Has(cert.ID()))
	// removing again is a no-op
	r.Remove(cert.ID())
}

func TestRegistry_Adopt(t *testing.T) {
	r := testRegistry(t)
	stale := NewCertificate(testSigner(t), types.VssPublicKey("stale"), 5)
	r.Add(stale)

	cert := NewCertificate(testSigner(t), types.VssPublicKey("vss key 1"), 5)
	vm, err := Validate(testVerifier(t), SingletonMap(cert))
	require.NoError(t, err)

	r.Adopt(vm)
	require.False(t, r.Has(stale.ID()))
	require.True(t, r.Has(cert.ID()))
}

func TestRegistry_SnapshotDetached(t *testing.T) {
	r := testRegistry(t)
	cert := NewCertificate(testSigner(t), types.VssPublicKey("vss key 1"), 5)
	r.Add(cert)

	snap := r.Snapshot()
	r.Remove(cert.ID())
	require.True(t, snap.Member(cert.ID()))
	require.False(t, r.Has(cert.ID()))
}

func TestRegistry_AdvanceEpochExpires(t *testing.T) {
	r := testRegistry(t)
	soon := NewCertificate(testSigner(t), types.VssPublicKey("vss key 1"), 1)
	later := NewCertificate(testSigner(t), types.VssPublicKey("vss key 2"), 2)
	durable := NewCertificate(testSigner(t), types.VssPublicKey("vss key 3"), 9)
	r.Add(soon)
	r.Add(later)
	r.Add(durable)

	// a certificate is valid through its expiry epoch
	expired := r.AdvanceEpoch(2)
	require.Len(t, expired, 1)
	require.Equal(t, soon, expired[0])
	require.False(t, r.Has(soon.ID()))
	require.True(t, r.Has(later.ID()))

	expired = r.AdvanceEpoch(3)
	require.Len(t, expired, 1)
	require.Equal(t, later, expired[0])
	require.True(t, r.Has(durable.ID()))
}

func TestRegistry_AdvanceEpochMonotonic(t *testing.T) {
	r := testRegistry(t)
	cert := NewCertificate(testSigner(t), types.VssPublicKey("vss key 1"), 1)
	r.Add(cert)

	require.Empty(t, r.AdvanceEpoch(3))
	require.Empty(t, r.AdvanceEpoch(2))
	require.Empty(t, r.AdvanceEpoch(3))
}

func TestRegistry_Rollback(t *testing.T) {
	r := testRegistry(t)
	cert := NewCertificate(testSigner(t), types.VssPublicKey("vss key 1"), 1)
	r.Add(cert)

	require.Len(t, r.AdvanceEpoch(2), 1)
	require.False(t, r.Has(cert.ID()))

	r.Rollback(1)
	require.True(t, r.Has(cert.ID()))

	// the restored certificate expires again on the next advance
	require.Len(t, r.AdvanceEpoch(2), 1)
}

func TestRegistry_RollbackKeepsNewerAnnouncement(t *testing.T) {
	r := testRegistry(t)
	signer := testSigner(t)
	old := NewCertificate(signer, types.VssPublicKey("vss key 1"), 1)
	r.Add(old)
	r.AdvanceEpoch(2)

	fresh := NewCertificate(signer, types.VssPublicKey("vss key 2"), 9)
	r.Add(fresh)

	r.Rollback(1)
	got, ok := r.Get(signer.StakeholderID())
	require.True(t, ok)
	require.Equal(t, fresh, got)
}

func TestRegistry_RetentionPruned(t *testing.T) {
	cfg := UnitTestConfig()
	cfg.RollbackDepth = 1
	r := NewRegistry(cfg, zaptest.NewLogger(t))

	cert := NewCertificate(testSigner(t), types.VssPublicKey("vss key 1"), 1)
	r.Add(cert)

	require.Len(t, r.AdvanceEpoch(2), 1)
	// dropped at epoch 2, retained through epoch 3, pruned at 4
	require.Empty(t, r.AdvanceEpoch(4))

	r.Rollback(1)
	require.False(t, r.Has(cert.ID()))
}
