package demo

import tea "github.com/charmbracelet/bubbletea"

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

func helpText() string {
	return "space play  ←/→ progress  ↑/↓ width  p progress  i image  t tint  q quit"
}
