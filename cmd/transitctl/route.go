package main

import (
	"fmt"
	"io"

	"intercity/internal/domain/entity"
	"intercity/internal/infra/routing/engine"

	"github.com/pkg/errors"
)

type routeOptions struct {
	data      string
	from      string
	to        string
	dimension string
	modes     string
}

func runRoute(out io.Writer, e *engine.Engine, opts routeOptions) error {
	dim, err := entity.ParseDimension(opts.dimension)
	if err != nil {
		return err
	}

	modes, err := entity.ParseModeSet(opts.modes)
	if err != nil {
		return err
	}
	if modes.IsEmpty() {
		modes = entity.AllModes()
	}

	if err := e.LoadData(opts.data); err != nil {
		return err
	}

	if opts.from == opts.to {
		if _, err := e.CityIndex(opts.from); err != nil {
			return err
		}
		fmt.Fprintln(out, "Departure and destination cities are the same.")

		return nil
	}

	route, err := e.FindRoute(opts.from, opts.to, dim, modes)
	if errors.Is(err, engine.ErrNoPathFound) {
		fmt.Fprintf(out, "No path found from %s to %s\n", opts.from, opts.to)

		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Selected transportation modes: %s\n", modes)
	fmt.Fprintf(out, "Optimal route from %s to %s:\n", route.Source, route.Destination)
	fmt.Fprintln(out, route.Summary())
	fmt.Fprintln(out, route.String())

	return nil
}
