package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "schwefel",
	Short: "Extrema of the Schwefel benchmark function",
	Long: `schwefel locates the stationary points of the one-dimensional Schwefel
component function f(x) = -x sin(sqrt(|x|)) by fixed-point iteration,
tabulates them, identifies the global minimum inside the standard
[-500, 500] box, and renders the function with the extrema overlaid.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	must(viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("schwefel")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}
	viper.SetEnvPrefix("SCHWEFEL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; flags and defaults apply.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "schwefel: reading config: %v\n", err)
			os.Exit(1)
		}
	}
}

// newLogger builds the process logger. Verbose mode switches to the
// human-oriented development encoder at debug level.
func newLogger() *zap.Logger {
	if viper.GetBool("verbose") {
		logger, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		return logger
	}
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return logger
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
