package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	consolesink "github.com/bnema/fiddle-runner/internal/adapters/sink/console"
	"github.com/bnema/fiddle-runner/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type installRecordMsg struct {
	record domain.OutputRecord
}

type installDoneMsg struct {
	ok bool
}

type installStyles struct {
	line   lipgloss.Style
	failed lipgloss.Style
	done   lipgloss.Style
}

// installProgressModel shows the runner's install log above a spinner that
// names the package manager and the modules it is working on.
type installProgressModel struct {
	spinner spinner.Model
	manager string
	modules []string
	install tea.Cmd
	lines   []domain.OutputRecord
	styles  installStyles
	ok      bool
	done    bool
}

func newInstallProgressModel(manager string, modules []string, install tea.Cmd) installProgressModel {
	return installProgressModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		manager: manager,
		modules: modules,
		install: install,
		styles: installStyles{
			line:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			failed: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			done:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
		},
	}
}

func (m installProgressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.install)
}

func (m installProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case installRecordMsg:
		m.lines = append(m.lines, msg.record)
		return m, nil
	case installDoneMsg:
		m.done = true
		m.ok = msg.ok
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m installProgressModel) View() string {
	lines := make([]string, 0, len(m.lines)+1)
	for _, record := range m.lines {
		if record.IsError() {
			lines = append(lines, m.styles.failed.Render(record.Text))
			continue
		}
		lines = append(lines, m.styles.line.Render(record.Text))
	}

	switch {
	case !m.done:
		lines = append(lines, fmt.Sprintf("%s %s is installing %s", m.spinner.View(), m.manager, strings.Join(m.modules, ", ")))
	case m.ok:
		lines = append(lines, m.styles.done.Render(fmt.Sprintf("Installed %s.", strings.Join(m.modules, ", "))))
	default:
		lines = append(lines, m.styles.failed.Render("Install failed."))
	}

	return strings.Join(lines, "\n") + "\n"
}

// runInstallProgress redirects the sink into the progress view for the
// duration of install.
func runInstallProgress(ctx context.Context, output io.Writer, sink *consolesink.Sink, manager string, modules []string, install func(context.Context) bool) (bool, error) {
	installCmd := func() tea.Msg {
		return installDoneMsg{ok: install(ctx)}
	}

	p := tea.NewProgram(
		newInstallProgressModel(manager, modules, installCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	restore := sink.Redirect(func(record domain.OutputRecord) {
		p.Send(installRecordMsg{record: record})
	})
	defer restore()

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(installProgressModel)
	if !ok {
		return false, fmt.Errorf("unexpected final install model type %T", finalModel)
	}

	return result.ok, nil
}
