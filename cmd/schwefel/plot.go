package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jvkersch/schwefel/chart"
	"github.com/jvkersch/schwefel/extrema"
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render the component function with its extrema overlaid",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		defer logger.Sync()

		cfg := chart.DefaultConfig()
		cfg.From = viper.GetFloat64("plot.from")
		cfg.To = viper.GetFloat64("plot.to")
		cfg.Samples = viper.GetInt("plot.samples")
		cfg.Output = viper.GetString("plot.output")

		kmax := viper.GetInt("plot.kmax")
		table, err := extrema.Table(kmax, nil)
		if err != nil {
			return err
		}
		cfg.Extrema = table

		if err := chart.Render(cfg); err != nil {
			return err
		}
		logger.Info("rendered chart",
			zap.String("output", cfg.Output),
			zap.Int("samples", cfg.Samples),
			zap.Int("extrema", len(cfg.Extrema)))
		return nil
	},
}

func init() {
	plotCmd.Flags().Float64("from", -500, "left end of the plotted interval")
	plotCmd.Flags().Float64("to", 500, "right end of the plotted interval")
	plotCmd.Flags().Int("samples", 2000, "number of curve samples")
	plotCmd.Flags().Int("kmax", 7, "largest branch index to overlay")
	plotCmd.Flags().StringP("output", "o", "schwefel.png", "output file (extension selects format)")
	must(viper.BindPFlag("plot.from", plotCmd.Flags().Lookup("from")))
	must(viper.BindPFlag("plot.to", plotCmd.Flags().Lookup("to")))
	must(viper.BindPFlag("plot.samples", plotCmd.Flags().Lookup("samples")))
	must(viper.BindPFlag("plot.kmax", plotCmd.Flags().Lookup("kmax")))
	must(viper.BindPFlag("plot.output", plotCmd.Flags().Lookup("output")))

	rootCmd.AddCommand(plotCmd)
}
