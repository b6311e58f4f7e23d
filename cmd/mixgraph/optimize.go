// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/mixgraph/internal/api"
	"github.com/tomtom215/mixgraph/internal/curve"
	"github.com/tomtom215/mixgraph/internal/logging"
	"github.com/tomtom215/mixgraph/internal/optimizer"
	"github.com/tomtom215/mixgraph/internal/track"
	"github.com/tomtom215/mixgraph/internal/validation"
)

type optimizeOptions struct {
	length       int
	start        string
	objective    string
	curve        string
	alternatives int
	maxNodes     int
	beam         int
	compact      bool
}

// trackFile is the input of the optimize command.
type trackFile struct {
	Tracks   []track.Track     `json:"tracks" validate:"required,min=1,dive"`
	Metadata track.MetadataSet `json:"metadata,omitempty"`
}

func newOptimizeCmd(root *rootOptions) *cobra.Command {
	opts := &optimizeOptions{}

	cmd := &cobra.Command{
		Use:   "optimize FILE",
		Short: "Optimize a JSON track file and print the playlist",
		Long: `Optimize reads {"tracks": [...], "metadata": {...}} (or a bare array of
tracks) from FILE, or from stdin when FILE is "-", and prints the result as
JSON. Search settings default to the loaded configuration.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			logging.Init(cfg.Logging)

			in, err := readTrackFile(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			return runOptimize(cmd.Context(), cmd.OutOrStdout(), cfg.OptimizerConfig(), in, opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.length, "length", "n", 10, "number of tracks in the playlist")
	flags.StringVar(&opts.start, "start", "", "id of the opening track")
	flags.StringVar(&opts.objective, "objective", "", "balanced, compatibility, narrative, energy_flow or cultural_journey")
	flags.StringVar(&opts.curve, "curve", "", "energy curve preset, e.g. warm_up or party")
	flags.IntVar(&opts.alternatives, "alternatives", 0, "number of alternative playlists")
	flags.IntVar(&opts.maxNodes, "max-nodes", 0, "node expansion budget (0 keeps the configured value)")
	flags.IntVar(&opts.beam, "beam", 0, "beam width (0 keeps the configured value)")
	flags.BoolVar(&opts.compact, "compact", false, "print compact JSON")
	return cmd
}

// readTrackFile decodes path, or r when path is "-".
func readTrackFile(path string, r io.Reader) (*trackFile, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(r)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read tracks: %w", err)
	}

	var in trackFile
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		err = json.Unmarshal(trimmed, &in.Tracks)
	} else {
		err = json.Unmarshal(data, &in)
	}
	if err != nil {
		return nil, fmt.Errorf("decode tracks %s: %w", path, err)
	}
	if verr := validation.ValidateStruct(&in); verr != nil {
		return nil, fmt.Errorf("invalid track file %s: %w", path, verr)
	}
	return &in, nil
}

func runOptimize(ctx context.Context, w io.Writer, cfg *optimizer.Config, in *trackFile, opts *optimizeOptions) error {
	if opts.maxNodes > 0 {
		cfg.MaxNodesToExplore = opts.maxNodes
	}
	if opts.beam > 0 {
		cfg.BeamWidth = opts.beam
	}
	opt, err := optimizer.NewOptimizer(cfg, logging.WithComponent("optimizer"))
	if err != nil {
		return err
	}

	req := optimizer.Request{
		Tracks:          in.Tracks,
		Metadata:        in.Metadata,
		TargetLength:    opts.length,
		StartTrack:      opts.start,
		MaxAlternatives: opts.alternatives,
	}
	if opts.objective != "" {
		if req.Objective, err = optimizer.ParseObjective(opts.objective); err != nil {
			return err
		}
	}
	if opts.curve != "" {
		c, ok := curve.Lookup(opts.curve)
		if !ok {
			return fmt.Errorf("unknown curve %q (known: %v)", opts.curve, curve.Names())
		}
		req.Curve = &c
	}

	res, err := opt.Optimize(ctx, req)
	if err != nil {
		if errors.Is(err, optimizer.ErrInvalidInput) {
			return fmt.Errorf("cannot optimize: %w", err)
		}
		return err
	}
	if res.Fallback {
		logging.Warn().Str("termination", res.Termination.String()).Msg("No complete path found, printing greedy playlist")
	}

	enc := json.NewEncoder(w)
	if !opts.compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(api.NewOptimizeResponse(res))
}
