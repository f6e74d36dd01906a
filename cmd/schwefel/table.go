package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jvkersch/schwefel/extrema"
	"github.com/jvkersch/schwefel/fixedpoint"
	"github.com/jvkersch/schwefel/write"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Tabulate the extrema for k = 1..kmax",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		defer logger.Sync()

		kmax := viper.GetInt("table.kmax")
		format := viper.GetString("table.format")
		outPath := viper.GetString("table.output")

		var t write.Type
		switch format {
		case "display":
			t = write.Displayer
		case "csv":
			t = write.Logger
		default:
			return fmt.Errorf("unknown format %q (want display or csv)", format)
		}

		var settings *fixedpoint.Settings
		if trace, _ := cmd.Flags().GetBool("trace"); trace {
			settings = fixedpoint.DefaultSettings()
			settings.DisplayWriters = []write.Writer{{Writer: os.Stderr, T: write.Displayer}}
		}

		results, err := extrema.Table(kmax, settings)
		if err != nil {
			return err
		}
		logger.Debug("located extrema", zap.Int("kmax", kmax))

		out := os.Stdout
		if outPath != "" {
			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}

		headings := []string{"k", "x_ext", "f(x_ext)", "|f'(x_ext)|"}
		rows := make([][]string, 0, len(results))
		for _, e := range results {
			rows = append(rows, []string{
				strconv.Itoa(e.K),
				strconv.FormatFloat(e.X, 'f', 10, 64),
				strconv.FormatFloat(e.F, 'f', 10, 64),
				strconv.FormatFloat(extrema.Residual(e), 'e', 2, 64),
			})
		}
		return write.WriteTable(write.Writer{Writer: out, T: t}, headings, rows)
	},
}

func init() {
	tableCmd.Flags().Int("kmax", 7, "largest branch index to tabulate")
	tableCmd.Flags().String("format", "display", "output format: display or csv")
	tableCmd.Flags().StringP("output", "o", "", "write the table to a file instead of stdout")
	tableCmd.Flags().Bool("trace", false, "trace solver iterations on stderr")
	must(viper.BindPFlag("table.kmax", tableCmd.Flags().Lookup("kmax")))
	must(viper.BindPFlag("table.format", tableCmd.Flags().Lookup("format")))
	must(viper.BindPFlag("table.output", tableCmd.Flags().Lookup("output")))

	rootCmd.AddCommand(tableCmd)
}
