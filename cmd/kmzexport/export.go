package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"kmzexport/internal/export"
	"kmzexport/internal/kml"
	"kmzexport/internal/source"
)

func newExportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export FILE...",
		Short: "convert KML/KMZ files into location tables",
		Long: `
  Converts each FILE and writes the enabled artifacts into --out. With more
  than one FILE every input gets its own subdirectory named after it.
  Inputs are converted concurrently, --jobs at a time. A file without any
  usable Placemark is reported and skipped; any other failure makes the
  command exit non-zero once every input has been tried.
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExport(cmd.Context(), args)
		},
	}
	a.cfg.BindExportFlags(cmd.Flags())
	return cmd
}

func (a *app) runExport(ctx context.Context, inputs []string) error {
	dirs := outputDirs(a.cfg.OutDir, inputs)
	errs := make([]error, len(inputs))
	var previewMu sync.Mutex

	var g errgroup.Group
	g.SetLimit(a.cfg.Jobs)
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			rows, err := a.exportOne(input, dirs[i])
			if err != nil {
				errs[i] = err
				return nil
			}
			if a.cfg.Preview && len(rows) > 0 {
				previewMu.Lock()
				defer previewMu.Unlock()
				fmt.Fprintf(a.stderr, "%s\n", input)
				if err := export.WritePreview(a.stderr, rows); err != nil {
					errs[i] = err
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed: %w", failed, len(inputs), errors.Join(errs...))
	}
	return nil
}

// exportOne converts one input and writes its artifacts into dir. The soft
// no-features outcome is logged and returns no rows and no error.
func (a *app) exportOne(input, dir string) ([]kml.Row, error) {
	log := a.log.With().Str("input", input).Logger()

	rows, err := source.Load(input, a.cfg.ParseOptions()...)
	if errors.Is(err, kml.ErrNoUsableFeatures) {
		log.Warn().Msg("No Placemark features with usable geometries were found.")
		return nil, nil
	}
	if err != nil {
		log.Error().Err(err).Msg(userMessage(err))
		return nil, fmt.Errorf("%s: %w", input, err)
	}

	arts, err := a.cfg.Artifacts().Render(rows)
	if err != nil {
		log.Error().Err(err).Msg("Error rendering artifacts")
		return nil, fmt.Errorf("%s: %w", input, err)
	}
	paths, err := export.WriteDir(dir, arts)
	if err != nil {
		log.Error().Err(err).Str("out", dir).Msg("Error writing artifacts")
		return nil, fmt.Errorf("%s: %w", input, err)
	}
	log.Info().
		Int("rows", len(rows)).
		Str("out", dir).
		Strs("files", paths).
		Msg("Exported placemarks")
	return rows, nil
}

// userMessage is the one-line explanation logged for a failed input.
func userMessage(err error) string {
	var (
		noKML   *kml.NoKMLFoundError
		archive *kml.ArchiveReadError
		bad     *kml.MalformedXMLError
	)
	switch {
	case errors.As(err, &noKML):
		return "No KML file found inside the KMZ."
	case errors.As(err, &archive):
		return "Could not read the KMZ archive."
	case errors.As(err, &bad):
		return "Could not parse the KML document."
	}
	return "Error processing file"
}

// outputDirs returns the directory each input is written to: out itself for
// a single input, otherwise out/<name> where name is the input's base name
// without extension, or with the extension folded in when two inputs would
// otherwise share a directory.
func outputDirs(out string, inputs []string) []string {
	dirs := make([]string, len(inputs))
	if len(inputs) == 1 {
		dirs[0] = out
		return dirs
	}
	stems := make([]string, len(inputs))
	count := make(map[string]int)
	for i, in := range inputs {
		base := filepath.Base(in)
		stems[i] = strings.TrimSuffix(base, filepath.Ext(base))
		count[stems[i]]++
	}
	for i, in := range inputs {
		name := stems[i]
		if count[name] > 1 {
			name = strings.ReplaceAll(filepath.Base(in), ".", "_")
		}
		dirs[i] = filepath.Join(out, name)
	}
	return dirs
}
