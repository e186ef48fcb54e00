// Command assemble encodes an A64 assembly source file to a flat binary of
// little-endian 32-bit words (spec §6).
package main

import (
	"fmt"
	"os"

	"github.com/a64kit/a64toolchain/asmconfig"
	"github.com/a64kit/a64toolchain/internal/dbg"
	"github.com/a64kit/a64toolchain/ioutil"
	"github.com/spf13/cobra"
)

func main() {
	var configPath string
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "assemble <input.s> <output.bin>",
		Short: "Assemble A64 source into a flat binary",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if verbose {
				dbg.Printf("assembling %s -> %s (strict=%v)", args[0], args[1], cfg.Execution.Strict)
			}

			if err := ioutil.AssembleFile(args[0], args[1]); err != nil {
				return fmt.Errorf("assemble: %w", err)
			}
			return nil
		},
	}
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to a TOML config file (default: platform config dir)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log the input and output paths (debug builds only)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "assemble: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*asmconfig.Config, error) {
	if path == "" {
		return asmconfig.Load()
	}
	return asmconfig.LoadFrom(path)
}
