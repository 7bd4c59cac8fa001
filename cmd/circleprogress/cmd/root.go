// Package cmd implements the circleprogress CLI commands.
//
// The root command dispatches to subcommands (demo, render, frames,
// version). Settings come from flags, an optional config file and
// CIRCLEPROGRESS_* environment variables, in that order of precedence.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/go-drift/circleprogress/cmd/circleprogress/internal/config"
	"github.com/go-drift/circleprogress/pkg/errors"
)

var cfgFile string

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "circleprogress",
	Short: "Circular image progress view",
	Long: `circleprogress draws a circular progress ring around a center image.

Use "circleprogress demo" for the interactive terminal demo, or "render"
and "frames" to write PNG output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		errors.SetHandler(&errors.LogHandler{Verbose: viper.GetBool("verbose")})
	},
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./circleprogress.config.yaml if present)")
	flags.String("attributes", "", "view attributes YAML file (default: ./"+config.DefaultAttributesFile+" if present)")
	flags.String("background", "", "canvas background color (#RRGGBB or #AARRGGBB)")
	flags.Float64("density", 0, "screen density, pixels per dp")
	flags.String("image", "", "center image file")
	flags.String("tint", "", "color used when the image is tinted")
	flags.BoolP("verbose", "v", false, "log errors with stack traces")

	bindFlag(rootCmd, "attributes", "attributes")
	bindFlag(rootCmd, "background", "background")
	bindFlag(rootCmd, "density", "density")
	bindFlag(rootCmd, "image.path", "image")
	bindFlag(rootCmd, "image.tint", "tint")
	bindFlag(rootCmd, "verbose", "verbose")
}

// bindFlag ties a viper key to a persistent or local flag of cmd.
func bindFlag(cmd *cobra.Command, key, flag string) {
	f := cmd.PersistentFlags().Lookup(flag)
	if f == nil {
		f = cmd.Flags().Lookup(flag)
	}
	if err := viper.BindPFlag(key, f); err != nil {
		panic(fmt.Sprintf("bind %s: %v", key, err))
	}
}

// initConfig reads the configuration file and environment variables.
func initConfig() {
	config.SetDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("circleprogress.config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		fmt.Fprintln(os.Stderr, "could not read config file:", err)
		os.Exit(1)
	}
}
