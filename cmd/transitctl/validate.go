package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"intercity/internal/infra/routing/loader"
	"intercity/internal/infra/routing/network"
	"intercity/internal/util"

	"github.com/pkg/errors"
)

func runValidate(out io.Writer, path string, logger *slog.Logger) error {
	fmt.Fprintf(out, "Validating transport data: %s\n", path)

	if err := validateTransportData(out, path, logger); err != nil {
		fmt.Fprintf(out, "❌ Validation failed: %v\n", err)

		return err
	}

	fmt.Fprintln(out, "✅ Validation passed!")

	return nil
}

func validateTransportData(out io.Writer, path string, logger *slog.Logger) error {
	digest, err := util.DigestFile(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "  ✅ Size: %s\n", util.FormatBytes(digest.Size))
	fmt.Fprintf(out, "  ✅ SHA256: %s\n", digest.SHA256)

	start := time.Now()
	data, err := loader.NewTextLoader(path, logger).Load()
	if err != nil {
		return err
	}

	registry := network.NewRegistry(0)
	for _, rec := range data.Records {
		from, err := registry.Register(rec.From)
		if err != nil {
			return errors.Wrapf(err, "line %d", rec.Line)
		}
		to, err := registry.Register(rec.To)
		if err != nil {
			return errors.Wrapf(err, "line %d", rec.Line)
		}
		if err := registry.Graph().SetEdge(from, to, rec.Mode, rec.Cost, rec.Time); err != nil {
			return errors.Wrapf(err, "line %d", rec.Line)
		}
	}

	fmt.Fprintf(out, "  ✅ Lines: %d\n", data.Stats.Lines)
	fmt.Fprintf(out, "  ✅ Records: %d\n", data.Stats.Records)
	fmt.Fprintf(out, "  ✅ Cities: %d\n", registry.Len())
	fmt.Fprintf(out, "  ✅ Connections: %d\n", len(registry.Graph().Edges()))
	fmt.Fprintf(out, "  ✅ Parsed in %s\n", time.Since(start).Round(time.Microsecond))

	if len(data.Skipped) == 0 {
		return nil
	}

	fmt.Fprintf(out, "  ⚠️  Skipped lines: %d\n", len(data.Skipped))
	for _, s := range data.Skipped {
		fmt.Fprintf(out, "     line %d: %s\n", s.Line, s.Reason)
	}

	return nil
}
