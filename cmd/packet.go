package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/eclipse-robotics/vexu-site/internal/content"
	"github.com/eclipse-robotics/vexu-site/internal/packet"
)

func newPacketCmd(_ *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "packet",
		Short: "Render the sponsorship packet PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			site, err := content.Load()
			if err != nil {
				return err
			}
			if output == "" {
				output = site.Packet.Filename
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			if err := packet.Write(f, site); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", output, err)
			}

			slog.Info("wrote sponsorship packet", "path", output)
			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: the packet's download name)")
	return cmd
}
