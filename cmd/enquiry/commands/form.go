package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shandysiswandi/enquiry/cmd/enquiry/ui"
	"github.com/shandysiswandi/enquiry/internal/enquiry"
	"github.com/spf13/cobra"
)

func runForm(cmd *cobra.Command, opts *options) error {
	signal := ui.NewSignal()
	session := enquiry.NewSession(opts.catalog, opts.relay, opts.controllerConfig(signal.Notify))
	defer session.Close()

	model := ui.New(cmd.Context(), session, signal, "Enquiry Form")
	_, err := tea.NewProgram(model,
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithAltScreen(),
	).Run()
	return err
}
