// Package tui provides the Bubble Tea frontend for Gold Rush.
// It handles the terminal UI loop, input mapping, and sprite drawing in cells.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/goldrush/internal/assets"
)

// TickMsg is sent to trigger a game frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// assetReportMsg carries one asset load result into Update.
type assetReportMsg assets.Report

// assetsDoneMsg is sent once the report channel is closed.
type assetsDoneMsg struct{}

// waitForReport returns a command that delivers the next asset report.
func waitForReport(reports <-chan assets.Report) tea.Cmd {
	if reports == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-reports
		if !ok {
			return assetsDoneMsg{}
		}
		return assetReportMsg(r)
	}
}
