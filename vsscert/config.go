package vsscert

// Config is the configuration of the certificate registry.
type Config struct {
	// RollbackDepth is the number of epochs for which expired certificates
	// are retained so a chain rollback can restore them.
	RollbackDepth uint32 `mapstructure:"registry-rollback-depth"`
	// MaxBatchSize caps the number of certificates accepted in a single
	// encoded batch.
	MaxBatchSize uint32 `mapstructure:"registry-max-batch-size"`
	// VerifiedCacheSize is the number of already-verified certificate
	// signatures remembered across batches.
	VerifiedCacheSize int `mapstructure:"registry-verified-cache-size"`
}

// DefaultConfig returns the default configuration for the registry.
func DefaultConfig() Config {
	return Config{
		RollbackDepth:     2,
		MaxBatchSize:      4096,
		VerifiedCacheSize: 8192,
	}
}

// UnitTestConfig returns the unit test configuration for the registry.
func UnitTestConfig() Config {
	return Config{
		RollbackDepth:     2,
		MaxBatchSize:      16,
		VerifiedCacheSize: 32,
	}
}
