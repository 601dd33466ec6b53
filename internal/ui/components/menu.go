package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/dayne-app/dayne/internal/ui/theme"
)

// MenuItem represents a single item in a vertical menu.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical selection menu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu with the first enabled item selected.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{
		Items:    items,
		Selected: selected,
	}
}

// Update handles keyboard navigation. Enter runs the selected item.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "down", "j":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "enter", "space":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}
	return m, nil
}

// View renders the menu as stacked buttons.
func (m Menu) View(width int) string {
	lines := make([]string, 0, len(m.Items))
	for i, item := range m.Items {
		if item.Disabled {
			lines = append(lines, theme.Dimmed.Render("  "+item.Label))
			continue
		}
		lines = append(lines, Button(item.Label, i == m.Selected, width))
	}
	return strings.Join(lines, "\n")
}
