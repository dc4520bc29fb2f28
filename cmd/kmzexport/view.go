package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"kmzexport/internal/tui"
)

func newViewCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [FILE]",
		Short: "browse placemarks on a terminal map",
		Long: `
  Opens the terminal viewer on the current directory, loading FILE first
  when given. Press e in the viewer to export the loaded file with the same
  artifact flags the export command takes.
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := tui.Options{
				DefaultSymbol:   a.cfg.Symbol(),
				StrictNamespace: a.cfg.StrictNamespace,
				Artifacts:       a.cfg.Artifacts(),
			}
			var m tea.Model
			if len(args) > 0 {
				m = tui.NewWithPath(opts, args[0])
			} else {
				m = tui.New(opts)
			}
			_, err := tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithMouseAllMotion(),
				tea.WithContext(cmd.Context()),
			).Run()
			return err
		},
	}
	a.cfg.BindExportFlags(cmd.Flags())
	return cmd
}
