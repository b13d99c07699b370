package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

type CommonModel struct {
	Width  int
	Height int
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// DataChangedMsg signals a successful write. The root model responds by
// re-fetching every dataset; there are no partial refreshes.
type DataChangedMsg struct{}

func DataChanged() tea.Msg {
	return DataChangedMsg{}
}
