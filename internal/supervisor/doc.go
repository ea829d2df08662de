// Reelmatch - Content-Based Movie Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package supervisor runs the recommendation service under a suture
// supervisor tree.
//
// # Tree Layout
//
//	reelmatch (root)
//	└── api-layer
//	    └── http-server
//
// A failing service is restarted with suture's backoff. A service that
// returns an error wrapping suture.ErrTerminateSupervisorTree stops the
// whole tree, and Run returns that error so the process can exit. Run
// returns nil when the context is canceled.
//
// Supervisor events are logged through sutureslog into the zerolog
// pipeline:
//
//	tree, err := supervisor.NewSupervisorTree(
//	    logging.NewSlogLogger("supervisor"),
//	    supervisor.DefaultTreeConfig(),
//	)
//	tree.AddAPIService(services.NewHTTPServerService(server, ":5000", 10*time.Second))
//	err = tree.Run(ctx)
package supervisor
