// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package main

import (
	"github.com/spf13/cobra"

	"github.com/tomtom215/mixgraph/internal/config"
)

// rootOptions are the flags shared by every command.
type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "mixgraph",
		Short: "Build DJ playlists from a track transition graph",
		Long: `Mixgraph orders analysed tracks into a playlist by searching a layered
transition graph for the best harmonic, tempo and energy flow.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"config file (default $"+config.ConfigPathEnvVar+" or ./config.yaml)")

	cmd.AddCommand(
		newServeCmd(opts),
		newOptimizeCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// loadConfig loads the explicit config file when one is given, and otherwise
// searches the default locations.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	if o.configPath != "" {
		return config.LoadFile(o.configPath)
	}
	return config.Load()
}
