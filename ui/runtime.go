package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

// Start browses rows until the user quits.
func Start(title string, rows []Row) error {
	browser := CreateSaveBrowser(title, rows)
	if err := tea.NewProgram(browser, tea.WithAltScreen()).Start(); err != nil {
		return errors.Wrap(err, "ui.Start error")
	}
	return nil
}
