// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

/*
Package services adapts mixgraph components to suture.Service.

Each wrapper translates a component's lifecycle into Serve(ctx) and names
itself through fmt.Stringer for supervisor logs:

  - HTTPServerService runs an *http.Server and shuts it down gracefully when
    ctx is canceled.
  - LibraryGCService periodically reclaims space in the library store's value
    log.

Usage:

	server := &http.Server{Addr: cfg.Server.Addr(), Handler: router}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logger))
	tree.AddStorageService(services.NewLibraryGCService(store, cfg.Library.GCInterval, logger))
*/
package services
