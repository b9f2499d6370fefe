package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tobyvance/glyphgrid/internal/protocol"
	"github.com/tobyvance/glyphgrid/internal/protocol/grid"
)

func newCapacityCmd() *cobra.Command {
	var (
		cfgPath    string
		size       int
		marker     int
		exclusion  int
		checksum   bool
		messageLen int
	)
	cmd := &cobra.Command{
		Use:   "capacity",
		Short: "Show data capacity for a grid geometry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := buildOptions(cmd, cfgPath, size, marker, exclusion, checksum)
			if err != nil {
				return err
			}
			if err := opts.Grid.Validate(); err != nil {
				return err
			}

			cells := grid.Capacity(opts.Grid)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "grid %dx%d: %d data cells, %d hamming blocks\n",
				opts.Grid.Size, opts.Grid.Size, cells, cells/7)
			fmt.Fprintf(out, "max message: %d bytes (checksum off: %d)\n",
				protocol.MaxPayload(opts.Grid, true), protocol.MaxPayload(opts.Grid, false))

			if cmd.Flags().Changed("message-len") {
				n, err := protocol.FitGridSize(messageLen, opts)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "smallest grid for %d bytes: %dx%d\n", messageLen, n, n)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "TOML config file")
	cmd.Flags().IntVar(&size, "size", 0, "grid size N (odd, 21-177)")
	cmd.Flags().IntVar(&marker, "marker-size", 0, "marker footprint in modules")
	cmd.Flags().IntVar(&exclusion, "exclusion", 0, "central exclusion radius, 0 = none")
	cmd.Flags().BoolVar(&checksum, "checksum", true, "account for the integrity check byte")
	cmd.Flags().IntVar(&messageLen, "message-len", 0, "also report the smallest grid for this message length")
	return cmd
}
