package cmd

import (
	"fmt"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/oakwood-commons/tabula/internal/loader"
	"github.com/oakwood-commons/tabula/pkg/settings"

	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Interactively preview a table, re-rendered on terminal resize",
	Long: `preview renders the table in an interactive pager. Resizing the
terminal re-renders the table at the new width, which makes it easy to see
how the column arrangement responds. Scroll with the arrow keys or PgUp/
PgDn; quit with q or ctrl+c.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		run, err := buildRunSettings(cmd, args)
		if err != nil {
			return err
		}
		ds, err := loadDataset(run)
		if err != nil {
			return err
		}
		if filterExpr != "" {
			if err := applyFilter(ds, filterExpr); err != nil {
				return err
			}
		}

		m := newPreviewModel(cmd, ds, run)
		prog := tea.NewProgram(m)
		_, err = prog.Run()
		return err
	},
}

// previewModel is the Bubble Tea model for the preview pager. The rendered
// table lives in a viewport; every window resize rebuilds the table at the
// new width so the arrangement tracks the terminal.
type previewModel struct {
	cmd     *cobra.Command
	dataset *loader.Dataset
	run     *settings.Run
	view    viewport.Model
	width   int
	height  int
	err     error
}

func newPreviewModel(cmd *cobra.Command, ds *loader.Dataset, run *settings.Run) *previewModel {
	return &previewModel{
		cmd:     cmd,
		dataset: ds,
		run:     run,
		view:    viewport.New(),
	}
}

func (m *previewModel) Init() tea.Cmd {
	return nil
}

func (m *previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.view.SetWidth(msg.Width)
		// One line is reserved for the status footer.
		m.view.SetHeight(max(msg.Height-1, 1))
		m.rerender()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

func (m *previewModel) View() tea.View {
	footer := fmt.Sprintf(" %d rows | %d cols | q to quit", len(m.dataset.Rows), m.width)
	if m.err != nil {
		footer = fmt.Sprintf(" render error: %v | q to quit", m.err)
	}
	return tea.NewView(m.view.View() + "\n" + footer)
}

// rerender rebuilds the table at the current window width and loads it into
// the viewport.
func (m *previewModel) rerender() {
	saved := outputWidth
	if saved == 0 {
		outputWidth = m.width
	}
	tbl, err := buildTable(m.cmd, m.dataset, m.run)
	outputWidth = saved
	if err != nil {
		m.err = err
		return
	}
	// The pager owns the screen, so the table always renders styled output
	// even though stdout is not a terminal from the renderer's view.
	tbl.ForceTTY()
	if m.run.NoColor {
		tbl.DisableStyling()
	}
	m.err = nil
	m.view.SetContent(tbl.Render())
}
