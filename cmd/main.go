package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/eclipse-robotics/vexu-site/service"
)

// app carries what every subcommand needs once the root pre-run has loaded it.
type app struct {
	config      *service.Config
	initLogging func(*service.Config, io.Writer) (func(), error)
	flush       func()
}

func newApp() *app {
	return &app{initLogging: setupLogging}
}

func newRootCmd() *cobra.Command {
	return newApp().rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vexu",
		Short: "Eclipse Robotics VEX U site",
		Long: `Serves the Eclipse Robotics VEX U site: four content panels, the live
Instagram feed, and the sponsorship packet.

Run without arguments to start the web server.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional; real environment variables win
			_ = godotenv.Load()

			config, err := service.LoadConfig()
			if err != nil {
				return err
			}
			a.config = config

			var out io.Writer = os.Stderr
			if cmd.Name() == "preview" {
				// the terminal belongs to the preview
				out = io.Discard
			}
			a.flush, err = a.initLogging(config, out)
			return err
		},
		RunE: a.runServe,
	}

	rootCmd.AddCommand(
		newServeCmd(a),
		newFeedCmd(a),
		newPacketCmd(a),
		newPreviewCmd(a),
	)

	return rootCmd
}

// execute runs cmd and flushes pending log events whether or not it failed.
func (a *app) execute(cmd *cobra.Command) error {
	defer func() {
		if a.flush != nil {
			a.flush()
		}
	}()
	return cmd.Execute()
}

func main() {
	a := newApp()
	if err := a.execute(a.rootCmd()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
