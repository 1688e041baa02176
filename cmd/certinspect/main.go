package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/randbeacon/go-randbeacon/signing"
	"github.com/randbeacon/go-randbeacon/vsscert"
)

var (
	configPath string
	logLevel   string
	prefix     string
)

func init() {
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a yaml config file for registry limits")
	cmd.PersistentFlags().StringVar(&logLevel, "level", "info", "logging level")
	cmd.PersistentFlags().StringVar(&prefix, "prefix", "", "hex network prefix mixed into signed messages")
}

var cmd = &cobra.Command{
	Use:   "certinspect <batch-file>",
	Short: "decode and validate a scale-encoded VSS certificate batch",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		lvl, err := zap.ParseAtomicLevel(strings.ToLower(logLevel))
		if err != nil {
			return err
		}
		zcfg := zap.NewProductionConfig()
		zcfg.Level = lvl
		logger, err := zcfg.Build()
		if err != nil {
			return err
		}
		defer logger.Sync()

		fs := afero.NewOsFs()
		cfg, err := loadConfig(fs, configPath)
		if err != nil {
			return fmt.Errorf("load config %s: %w", configPath, err)
		}
		return run(c.OutOrStdout(), fs, logger, cfg, args[0], prefix)
	},
}

func loadConfig(fs afero.Fs, path string) (vsscert.Config, error) {
	cfg := vsscert.DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	vip := viper.New()
	vip.SetFs(fs)
	vip.SetConfigFile(path)
	if err := vip.ReadInConfig(); err != nil {
		return cfg, err
	}
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := vip.Unmarshal(&cfg, hook); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func run(w io.Writer, fs afero.Fs, logger *zap.Logger, cfg vsscert.Config, path, prefix string) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return fmt.Errorf("read batch file %s: %w", path, err)
	}

	var opts []signing.VerifierOptionFunc
	if prefix != "" {
		opts = append(opts, signing.WithVerifierPrefix([]byte(prefix)))
	}
	verifier, err := signing.NewEdVerifier(opts...)
	if err != nil {
		return err
	}
	bv, err := vsscert.NewBatchVerifier(verifier, cfg, logger)
	if err != nil {
		return err
	}

	certs, err := bv.DecodeBatch(data)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%d certificates in batch\n", len(certs))
	for _, cert := range certs {
		fmt.Fprintf(w, "  stakeholder %s vss key %s expires after epoch %s\n",
			cert.ID().ShortString(), cert.VssKey.ShortString(), cert.ExpiryEpoch)
	}

	vm, err := bv.VerifyBatch(certs)
	if err != nil {
		fmt.Fprintf(w, "batch INVALID: %v\n", err)
		return err
	}
	fmt.Fprintf(w, "batch OK: %d stakeholders registered\n", vm.Len())
	return nil
}

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
