// Command emulate runs a flat A64 binary to completion and dumps the final
// machine state (spec §6).
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
		Use:   "emulate <input.bin> <output.out>",
		Short: "Run an A64 binary and print its final state",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(configPath); err != nil {
				return err
			}
			if verbose {
				dbg.Printf("emulating %s -> %s", args[0], args[1])
			}

			machine, runErr := ioutil.RunFile(args[0])
			if machine == nil {
				return fmt.Errorf("emulate: %w", runErr)
			}

			w, err := os.Create(args[1])
			if err != nil {
				return fmt.Errorf("emulate: %w", err)
			}
			defer w.Close()
			if err := ioutil.WriteStateDump(w, machine); err != nil {
				return fmt.Errorf("emulate: writing state dump: %w", err)
			}

			if runErr != nil {
				return fmt.Errorf("emulate: %w", runErr)
			}
			return nil
		},
	}
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to a TOML config file (default: platform config dir)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log the input and output paths (debug builds only)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "emulate: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*asmconfig.Config, error) {
	if path == "" {
		return asmconfig.Load()
	}
	return asmconfig.LoadFrom(path)
}
