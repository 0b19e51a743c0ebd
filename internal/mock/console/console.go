// Package console renders the mock server's terminal presentation: the
// startup banner and the final stats summary. It only observes counters and
// log output; the server behaves identically when the console is disabled.
package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/sins621/timesheets/pkg/metrics"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	endpointStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	linkStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dimStyle      = lipgloss.NewStyle().Faint(true)
	panelStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(1, 2)
)

type Console struct {
	out io.Writer
}

func New(out io.Writer) *Console {
	return &Console{out: out}
}

// Banner prints the startup panel: available endpoints and the docs URL.
func (c *Console) Banner(port int) {
	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Warp Development API Test Server"),
		"",
		headingStyle.Render("Available Endpoints:"),
		endpointStyle.Render("  POST /api/account/Authorise - Login & get bearer token"),
		endpointStyle.Render("  GET  /api/client/list - List customers (auth required)"),
		endpointStyle.Render("  GET  /api/project/client/{id} - List projects (auth required)"),
		endpointStyle.Render("  POST /api/entry/create - Create time entry (auth required)"),
		endpointStyle.Render("  GET  / - API documentation page"),
		"",
		linkStyle.Render(fmt.Sprintf("Documentation: http://localhost:%d", port)),
		dimStyle.Render("Press Ctrl+C to stop the server"),
	)

	fmt.Fprintln(c.out, panelStyle.Render(body))
}

// FinalStats prints the closing summary after shutdown.
func (c *Console) FinalStats(snap metrics.Snapshot) {
	fmt.Fprintln(c.out, dimStyle.Render(fmt.Sprintf(
		"Final stats: %d requests served, %d tokens issued",
		snap.TotalRequests, snap.ActiveTokens)))
}
