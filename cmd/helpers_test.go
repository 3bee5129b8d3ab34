package main

import (
	"testing"

	"github.com/eclipse-robotics/vexu-site/internal/content"
	"github.com/eclipse-robotics/vexu-site/service"
	"github.com/stretchr/testify/require"
)

func loadTestConfig(t *testing.T) *service.Config {
	t.Helper()
	cfg, err := service.LoadConfig()
	require.NoError(t, err)
	return cfg
}

func mustSite(t *testing.T) *content.Site {
	t.Helper()
	site, err := content.Load()
	require.NoError(t, err)
	return site
}
