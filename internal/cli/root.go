// Package cli implements the decodebench command.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pion/decodebench/internal/logging"
	plogging "github.com/pion/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "DECODEBENCH"

// NewCommand builds the root command. Settings come from flags, then
// DECODEBENCH_* environment variables, then the optional config file.
func NewCommand() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "decodebench",
		Short:         "Benchmark third-party image and compression decoders",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(v, cfgFile); err != nil {
				return err
			}
			if v.GetBool("verbose") {
				logging.SetLevel(plogging.LogLevelDebug)
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")
	flags.BoolP("verbose", "v", false, "enable debug logging on stderr")
	bindFlags(v, flags, "verbose")

	cmd.AddCommand(newRunCommand(v), newListCommand(), newRatioCommand(v))
	return cmd
}

// bindFlags makes the named flags the highest priority source of their viper
// keys.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, names ...string) {
	for _, name := range names {
		_ = v.BindPFlag(name, fs.Lookup(name))
	}
}

func loadConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile == "" {
		return nil
	}
	v.SetConfigFile(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config %s: %w", cfgFile, err)
	}
	return nil
}

// Execute runs the root command with os.Args and exits 1 on error.
func Execute() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		logging.NewLogger("decodebench/cli").Errorf("%v", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cmd := NewCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}
