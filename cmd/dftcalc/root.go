package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-dft/dsp/engine"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v       *viper.Viper
	log     *logrus.Logger
	cfg     Config
	cfgFile string
}

// newRootCmd builds the command tree. Output goes to cmd.OutOrStdout, logs
// to cmd.ErrOrStderr.
func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: logrus.New()}

	root := &cobra.Command{
		Use:   "dftcalc",
		Short: "Discrete Fourier transform and convolution calculator",
		Long: `dftcalc computes DFT, IDFT, FFT, twiddle factors and circular, linear,
overlap-save and overlap-add convolutions of short complex sequences.

Sequences are written as comma separated samples, either real numbers or
(re,im) pairs:

  dftcalc dft "(1,0), (0,-1), (2,3), (0,0)"
  dftcalc fft 1,2,3,4,5 -n 8
  dftcalc overlap-save 1,2,3,4,5,6 --second 1,1,1 -n 4`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initConfig(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (YAML)")
	flags.Int("precision", 0, "decimal places in results (0-12)")
	flags.StringP("output", "o", "", "output format (table, json, yaml)")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.Int("workers", 0, "concurrent jobs for batch")
	flags.Duration("timeout", 0, "per-request timeout (0 disables)")
	flags.String("kernel", "", "power-of-two FFT kernel (radix2, planned)")

	for _, op := range engine.Operations() {
		root.AddCommand(a.newOperationCmd(op))
	}
	root.AddCommand(
		a.newTermsCmd(),
		a.newOpsCmd(),
		a.newPresetsCmd(),
		a.newGenerateCmd(),
		a.newBatchCmd(),
	)
	return root
}

// initConfig reads the config file and environment and binds flags.
func (a *app) initConfig(cmd *cobra.Command) error {
	v := a.v
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := bindFlags(cmd.Root().PersistentFlags(), v); err != nil {
		return err
	}

	if a.cfgFile != "" {
		v.SetConfigFile(a.cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log.SetOutput(cmd.ErrOrStderr())
	level, _ := logrus.ParseLevel(cfg.LogLevel)
	a.log.SetLevel(level)
	a.log.WithFields(logrus.Fields{
		"function":  "initConfig",
		"config":    v.ConfigFileUsed(),
		"precision": cfg.Precision,
		"output":    cfg.Output,
		"kernel":    cfg.Kernel,
	}).Debug("Configuration loaded")
	return nil
}

// bindFlags binds each flag to the viper key of the same name with dashes
// replaced by underscores. Unchanged flags do not shadow file or env values.
func bindFlags(flags *pflag.FlagSet, v *viper.Viper) error {
	var lastErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" {
			return
		}
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			lastErr = err
		}
	})
	return lastErr
}

// runner builds an engine runner from the loaded config.
func (a *app) runner() *engine.Runner {
	return engine.NewRunner(
		engine.WithLogger(a.log),
		engine.WithWorkers(a.cfg.Workers),
		engine.WithDefaults(a.cfg.engineOptions()...),
	)
}

// context applies the configured timeout to the command context.
func (a *app) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if a.cfg.Timeout > 0 {
		return context.WithTimeout(ctx, a.cfg.Timeout)
	}
	return context.WithCancel(ctx)
}

func (a *app) out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
