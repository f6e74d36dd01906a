package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jvkersch/schwefel/extrema"
)

var preciseCmd = &cobra.Command{
	Use:   "precise",
	Short: "Locate one extremum in arbitrary-precision arithmetic",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		defer logger.Sync()

		k := viper.GetInt("precise.k")
		digits := viper.GetInt("precise.digits")
		iterations := viper.GetInt("precise.iterations")

		e, err := extrema.SolvePrecise(k, digits, iterations)
		if err != nil {
			return err
		}
		logger.Debug("solved precise branch",
			zap.Int("k", k),
			zap.Int("digits", digits))

		z, x, f := e.Strings(digits)
		fmt.Printf("k        = %d\n", e.K)
		fmt.Printf("z_ext    = %s\n", z)
		fmt.Printf("x_ext    = %s\n", x)
		fmt.Printf("f(x_ext) = %s\n", f)
		return nil
	},
}

func init() {
	preciseCmd.Flags().Int("k", 7, "branch index")
	preciseCmd.Flags().Int("digits", 50, "decimal digits of precision")
	preciseCmd.Flags().Int("iterations", 0, "iteration budget (0 derives one from the contraction rate)")
	must(viper.BindPFlag("precise.k", preciseCmd.Flags().Lookup("k")))
	must(viper.BindPFlag("precise.digits", preciseCmd.Flags().Lookup("digits")))
	must(viper.BindPFlag("precise.iterations", preciseCmd.Flags().Lookup("iterations")))

	rootCmd.AddCommand(preciseCmd)
}
