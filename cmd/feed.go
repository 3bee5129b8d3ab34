package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/eclipse-robotics/vexu-site/internal/feed"
)

func newFeedCmd(a *app) *cobra.Command {
	var url string

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Fetch the feed once and print the posts the site would show",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if url == "" {
				url = a.config.Feed.URL
			}
			client := feed.NewClient(url, nil)
			res := feed.NewLoader(client).Load(cmd.Context())

			posts := res.Posts
			if posts == nil {
				posts = []feed.Post{}
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				ID    string         `json:"id"`
				State feed.LoadState `json:"state"`
				Posts []feed.Post    `json:"posts"`
			}{res.ID, res.State, posts})
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "feed URL (default: FEED_URL)")
	return cmd
}
