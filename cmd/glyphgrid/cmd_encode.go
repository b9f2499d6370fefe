package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tobyvance/glyphgrid/internal/config"
	"github.com/tobyvance/glyphgrid/internal/logging"
	"github.com/tobyvance/glyphgrid/internal/protocol"
)

func newEncodeCmd() *cobra.Command {
	var (
		cfgPath   string
		size      int
		marker    int
		exclusion int
		checksum  bool
		fit       bool
		outPath   string
	)
	cmd := &cobra.Command{
		Use:   "encode <message>",
		Short: "Encode an ASCII message into a symbol grid (JSON to stdout)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.ConfigureRuntime()

			opts, err := buildOptions(cmd, cfgPath, size, marker, exclusion, checksum)
			if err != nil {
				return err
			}
			msg := []byte(args[0])
			if fit {
				n, err := protocol.FitGridSize(len(msg), opts)
				if err != nil {
					return err
				}
				opts.Grid.Size = n
			}

			g, err := protocol.Encode(msg, opts)
			if err != nil {
				return err
			}
			data, err := marshalGrid(g)
			if err != nil {
				return err
			}
			if outPath != "" {
				return os.WriteFile(outPath, data, 0o644)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "TOML config file")
	cmd.Flags().IntVar(&size, "size", 0, "grid size N (odd, 21-177)")
	cmd.Flags().IntVar(&marker, "marker-size", 0, "marker footprint in modules")
	cmd.Flags().IntVar(&exclusion, "exclusion", 0, "central exclusion radius, 0 = none")
	cmd.Flags().BoolVar(&checksum, "checksum", true, "append the integrity check byte")
	cmd.Flags().BoolVar(&fit, "fit", false, "pick the smallest grid size that holds the message")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write grid JSON to a file instead of stdout")
	return cmd
}

// buildOptions layers config file and changed flags over the defaults.
func buildOptions(cmd *cobra.Command, cfgPath string, size, marker, exclusion int, checksum bool) (protocol.Options, error) {
	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return protocol.Options{}, err
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.GridSize = size
	}
	if flags.Changed("marker-size") {
		cfg.MarkerSize = marker
	}
	if flags.Changed("exclusion") {
		cfg.ExclusionRadius = exclusion
	}
	if flags.Changed("checksum") {
		cfg.Checksum = checksum
	}
	return protocol.Options{Grid: cfg.Grid(), Checksum: cfg.Checksum}, nil
}
