package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const envPrefix = "NEUTRONBENCH"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "neutronbench",
		Short: "Benchmark scenario driver for OpenStack networking",
		Long: "neutronbench runs named smoke scenarios against an OpenStack cloud,\n" +
			"timing every resource operation. Credentials come from the usual OS_*\n" +
			"environment variables.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindEnv(cmd.Flags())
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	cmd.AddCommand(newRunCommand())
	cmd.AddCommand(newScenariosCommand())
	cmd.AddCommand(newVersionCommand())
	return cmd
}

// bindEnv fills unset flags from NEUTRONBENCH_* environment variables, so
// for example --metrics-addr falls back to NEUTRONBENCH_METRICS_ADDR.
func bindEnv(flags *pflag.FlagSet) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed || !v.IsSet(f.Name) {
			return
		}
		err = flags.Set(f.Name, v.GetString(f.Name))
	})
	return err
}

func buildLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
