package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"
	"github.com/vinerr/ntree"
)

const errTypeInvalidArgs = "ntreectl_invalid_args"

type light struct {
	ID       int       `json:"id"`
	Position []float64 `json:"position"`
}

type stats struct {
	Lights        int `json:"lights"`
	Nodes         int `json:"nodes"`
	Leaves        int `json:"leaves"`
	MaxDepth      int `json:"max_depth"`
	CachedResults int `json:"cached_results"`
}

func newClosestCmd(f *flags) *cobra.Command {
	var maxDistance float64

	cmd := &cobra.Command{
		Use:   "closest X1 [X2 ...]",
		Short: "Print the light closest to a location",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := f.load()
			if err != nil {
				return err
			}
			defer a.Close()

			loc, err := parseCoords(args, a.Dims())
			if err != nil {
				return err
			}

			var res []light
			if p, ok := a.Closest(loc, maxDistance); ok {
				res = append(res, toLight(p))
			}
			return f.printLights(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().Float64Var(&maxDistance, "max-distance", 1, "Only consider lights strictly closer than this")
	return cmd
}

func newRadiusCmd(f *flags) *cobra.Command {
	var radius float64

	cmd := &cobra.Command{
		Use:   "radius X1 [X2 ...]",
		Short: "Print the lights within a radius of a location",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := f.load()
			if err != nil {
				return err
			}
			defer a.Close()

			loc, err := parseCoords(args, a.Dims())
			if err != nil {
				return err
			}
			return f.printLights(cmd.OutOrStdout(), toLights(a.WithinRadius(loc, radius)))
		},
	}
	cmd.Flags().Float64VarP(&radius, "radius", "r", 0.1, "Radius around the location, excluded")
	return cmd
}

func newBoxCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "box LOWER... UPPER...",
		Short: "Print the lights within a box",
		Long: `Print the lights within the box between two opposite corners, bounds
included. The first half of the arguments is one corner, the second half the
other.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := f.load()
			if err != nil {
				return err
			}
			defer a.Close()

			corners, err := parseCoords(args, 2*a.Dims())
			if err != nil {
				return err
			}
			lower, upper := corners[:a.Dims()], corners[a.Dims():]
			return f.printLights(cmd.OutOrStdout(), toLights(a.WithinBox(lower, upper)))
		},
	}
}

func newStatsCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the shape of the arrangement tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := f.load()
			if err != nil {
				return err
			}
			defer a.Close()

			s := a.Stats()
			res := stats{
				Lights:        s.Points,
				Nodes:         s.Nodes,
				Leaves:        s.Leaves,
				MaxDepth:      s.MaxDepth,
				CachedResults: s.CachedResults,
			}

			w := cmd.OutOrStdout()
			if f.json {
				return json.NewEncoder(w).Encode(res)
			}
			_, err = fmt.Fprintf(w, "lights: %d\nnodes: %d\nleaves: %d\nmax depth: %d\ncached results: %d\n",
				res.Lights, res.Nodes, res.Leaves, res.MaxDepth, res.CachedResults)
			return err
		},
	}
}

func parseCoords(args []string, n int) ([]float64, error) {
	if len(args) != n {
		return nil, errors.New("wrong number of coordinates").
			WithType(errTypeInvalidArgs).
			WithTag("expected", n).
			WithTag("got", len(args))
	}

	coords := make([]float64, n)
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, errors.New("invalid coordinate").
				WithType(errTypeInvalidArgs).
				WithTag("coordinate", arg).
				Wrap(err)
		}
		coords[i] = v
	}
	return coords, nil
}

func toLight(p ntree.DataPoint[int]) light {
	return light{ID: p.Data, Position: p.Point}
}

func toLights(points []ntree.DataPoint[int]) []light {
	res := make([]light, 0, len(points))
	for _, p := range points {
		res = append(res, toLight(p))
	}
	return res
}

func (f *flags) printLights(w io.Writer, lights []light) error {
	if f.json {
		if lights == nil {
			lights = []light{}
		}
		return json.NewEncoder(w).Encode(lights)
	}

	if len(lights) == 0 {
		_, err := fmt.Fprintln(w, "no lights found")
		return err
	}
	for _, l := range lights {
		coords := make([]string, len(l.Position))
		for i, c := range l.Position {
			coords[i] = strconv.FormatFloat(c, 'g', -1, 64)
		}
		if _, err := fmt.Fprintf(w, "%d\t%s\n", l.ID, strings.Join(coords, ",")); err != nil {
			return err
		}
	}
	return nil
}
