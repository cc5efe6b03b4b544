package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PickerEntry is one row offered to the interactive app picker: an app
// record's display fields plus whatever the caller needs to recognize the
// selection afterward.
type PickerEntry struct {
	ID         string
	Name       string
	Publisher  string
	TotalBytes uint64
}

func (e PickerEntry) Title() string { return e.Name }

func (e PickerEntry) Description() string {
	size := FormatSizePlain(int64(e.TotalBytes))
	if e.Publisher == "" {
		return size
	}
	return fmt.Sprintf("%s · %s", e.Publisher, size)
}

func (e PickerEntry) FilterValue() string { return e.Name + " " + e.Publisher }

type pickerModel struct {
	list     list.Model
	selected *PickerEntry
	quitting bool
}

// RunAppPicker launches a full-screen, filterable list of entries and
// returns the one the user selected with Enter. Returns nil if the user
// quit without selecting.
func RunAppPicker(entries []PickerEntry) (*PickerEntry, error) {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = e
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(ColorPrimary).BorderForeground(ColorPrimary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(ColorTextDim).BorderForeground(ColorPrimary)

	l := list.New(items, delegate, 80, 24)
	l.Title = "Installed applications"
	l.Styles.Title = lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)

	m := pickerModel{list: l}
	p := tea.NewProgram(m, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	result := final.(pickerModel)
	if result.quitting {
		return nil, nil
	}
	return result.selected, nil
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if m.list.FilterState() == list.Filtering {
				break
			}
			if item, ok := m.list.SelectedItem().(PickerEntry); ok {
				m.selected = &item
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(ShowBrandBanner())
	b.WriteString(m.list.View())
	return b.String()
}
