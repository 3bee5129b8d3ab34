package main

import (
	"github.com/spf13/cobra"

	"github.com/eclipse-robotics/vexu-site/internal/content"
	"github.com/eclipse-robotics/vexu-site/internal/feed"
	"github.com/eclipse-robotics/vexu-site/internal/tui"
)

func newPreviewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Browse the site panels in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			site, err := content.Load()
			if err != nil {
				return err
			}
			client := feed.NewClient(a.config.Feed.URL, nil)
			return tui.Run(site, feed.NewLoader(client))
		},
	}
}
