// Command schwefel tabulates, locates, and plots the extrema of the
// Schwefel benchmark function.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
