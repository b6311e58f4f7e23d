// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

// Package main is the mixgraph command.
//
// Mixgraph orders a set of analysed tracks into a DJ playlist: it builds a
// layered transition graph over the tracks and searches it with beam-limited
// A* for the sequence that best fits harmonic, tempo, energy and cultural
// compatibility along a target energy curve.
//
// # Commands
//
//	mixgraph serve              run the HTTP API under the supervisor tree
//	mixgraph optimize FILE      optimize a JSON track file and print the result
//	mixgraph version            print build information
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority
// wins):
//   - Environment variables (HTTP_PORT, LOG_LEVEL, BEAM_SEARCH_WIDTH, ...)
//   - Config file (--config, $MIXGRAPH_CONFIG, ./config.yaml)
//   - Built-in defaults
//
// # Example Usage
//
//	mixgraph optimize --length 12 --curve warm_up set.json
//	LIBRARY_PATH=/var/lib/mixgraph mixgraph serve
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
