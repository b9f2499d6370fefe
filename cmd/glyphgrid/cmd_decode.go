package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tobyvance/glyphgrid/internal/config"
	"github.com/tobyvance/glyphgrid/internal/logging"
	"github.com/tobyvance/glyphgrid/internal/protocol"
)

func newDecodeCmd() *cobra.Command {
	var (
		cfgPath  string
		checksum bool
	)
	cmd := &cobra.Command{
		Use:   "decode [grid.json]",
		Short: "Decode a classified symbol grid back to its message",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.ConfigureRuntime()

			var (
				data []byte
				err  error
			)
			if len(args) > 0 {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("read grid: %w", err)
			}

			g, err := unmarshalGrid(data)
			if err != nil {
				return err
			}

			// Geometry travels with the grid JSON; only the checksum
			// toggle must match the encoder.
			useChecksum := checksum
			if cfgPath != "" {
				cfg, err := config.Load(cfgPath)
				if err != nil {
					return err
				}
				if !cmd.Flags().Changed("checksum") {
					useChecksum = cfg.Checksum
				}
			}

			msg, rep, err := protocol.Decode(g, protocol.Options{Grid: g.Config, Checksum: useChecksum})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(msg))
			fmt.Fprintf(cmd.ErrOrStderr(), "rotation=%s blocks=%d corrected=%d\n",
				rep.Rotation, rep.BlocksTotal, rep.BlocksCorrected)
			return nil
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "TOML config file")
	cmd.Flags().BoolVar(&checksum, "checksum", true, "verify the integrity check byte")
	return cmd
}
