package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/optimize"

	"github.com/jvkersch/schwefel/extrema"
	"github.com/jvkersch/schwefel/schwefel"
)

var minCmd = &cobra.Command{
	Use:   "min",
	Short: "Report the global minimum of the N-dimensional function",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		defer logger.Sync()

		dims := viper.GetInt("min.dims")
		bound := viper.GetFloat64("min.bound")

		k := extrema.GlobalBranch(bound)
		if k == 0 {
			return fmt.Errorf("no odd branch inside [-%g, %g]", bound, bound)
		}
		x, f, err := extrema.GlobalMinimum(dims, bound)
		if err != nil {
			return err
		}
		logger.Info("global minimum",
			zap.Int("branch", k),
			zap.Int("dims", dims),
			zap.Float64("x", x[0]),
			zap.Float64("F", f))

		fmt.Printf("branch   k = %d\n", k)
		fmt.Printf("minimizer  = (%.10f, ...) in %d dimensions\n", x[0], dims)
		fmt.Printf("minimum    = %.10f\n", f)

		if refine, _ := cmd.Flags().GetBool("refine"); refine {
			// Polish the closed-form answer with a general-purpose local
			// minimizer as an independent check.
			problem := optimize.Problem{
				Func: schwefel.Objective,
				Grad: schwefel.Grad,
			}
			result, err := optimize.Minimize(problem, x, nil, &optimize.NelderMead{})
			if err != nil {
				return fmt.Errorf("refining: %w", err)
			}
			logger.Info("refined minimum",
				zap.Float64("x", result.X[0]),
				zap.Float64("F", result.F),
				zap.String("status", result.Status.String()))
			fmt.Printf("refined    = %.10f at x = %.10f\n", result.F, result.X[0])
		}
		return nil
	},
}

func init() {
	minCmd.Flags().Int("dims", 1, "dimension of the objective")
	minCmd.Flags().Float64("bound", schwefel.Bound, "half-width of the domain box")
	minCmd.Flags().Bool("refine", false, "cross-check with a Nelder-Mead polish")
	must(viper.BindPFlag("min.dims", minCmd.Flags().Lookup("dims")))
	must(viper.BindPFlag("min.bound", minCmd.Flags().Lookup("bound")))

	rootCmd.AddCommand(minCmd)
}
