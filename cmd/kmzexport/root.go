package main

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"kmzexport/internal/config"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

type app struct {
	cfg    config.Config
	log    zerolog.Logger
	stdout io.Writer
	// stderr is shared by the logger and --preview across export goroutines.
	stderr io.Writer
	color  bool
}

func newRootCmd(stdout, stderr io.Writer, lookupEnv func(string) (string, bool)) *cobra.Command {
	a := &app{
		cfg:    config.Default(),
		stdout: stdout,
		stderr: zerolog.SyncWriter(stderr),
		color:  isTerminal(stderr),
		log:    zerolog.Nop(),
	}

	root := &cobra.Command{
		Use:   "kmzexport",
		Short: "export KML/KMZ placemarks as classified location tables",
		Long: `
  Reads KML documents, bare or zipped as KMZ, and turns every Point and
  Polygon Placemark into a row of latitude, longitude, name and map symbol.
  Settings may also come from KMZEXPORT_* environment variables, e.g.
  KMZEXPORT_DEFAULT_SYMBOL for --default-symbol.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.ApplyEnv(cmd.Flags(), lookupEnv); err != nil {
				return err
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			a.log = newLogger(a.stderr, a.cfg, a.color)
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	a.cfg.BindLogFlags(root.PersistentFlags())

	root.AddCommand(newExportCmd(a), newViewCmd(a), newVersionCmd(a))
	return root
}

// newLogger writes human readable lines by default and JSON lines with
// --log-format json. w must be safe for concurrent use.
func newLogger(w io.Writer, cfg config.Config, color bool) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	out := w
	if strings.EqualFold(cfg.LogFormat, "console") {
		out = zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    !color,
			TimeFormat: time.Kitchen,
		}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := io.WriteString(a.stdout, "kmzexport "+version+"\n")
			return err
		},
	}
}
