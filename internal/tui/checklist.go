// Package tui is the interactive packing checklist.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Bankableflunky5/HikingApp/internal/inventory"
)

// Saver flushes a checklist to storage.
type Saver interface {
	SaveChecklist(ctx context.Context, c inventory.Checklist) error
}

type keyMap struct {
	Up, Down, Left, Right key.Binding
	Toggle, Save, Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Save, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Toggle, k.Save, k.Quit},
	}
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev column")),
	Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next column")),
	Toggle: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
	Save:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "exit")),
}

// savedMsg reports the outcome of a save.
type savedMsg struct{ err error }

// Model is the checklist screen. Entries are laid out in columns of
// inventory.ChecklistRows. Toggles stay in memory until saved; quitting
// discards unsaved toggles.
type Model struct {
	ctx    context.Context
	saver  Saver
	list   inventory.Checklist
	cursor int
	dirty  bool
	saving bool
	status string
	err    error
	help   help.Model
}

// New returns a checklist screen over list.
func New(ctx context.Context, saver Saver, list inventory.Checklist) Model {
	return Model{
		ctx:   ctx,
		saver: saver,
		list:  list,
		help:  help.New(),
	}
}

// Checklist returns the current, possibly unsaved, state.
func (m Model) Checklist() inventory.Checklist {
	return m.list
}

// Dirty reports whether there are unsaved toggles.
func (m Model) Dirty() bool {
	return m.dirty
}

// Err returns the error of the last save, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		m.saving = false
		m.err = msg.err
		if msg.err != nil {
			m.status = ""
			return m, nil
		}
		m.dirty = false
		m.status = "checklist saved"
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		n := len(m.list.Entries)
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case n == 0:
			return m, nil
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < n-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Left):
			if m.cursor >= inventory.ChecklistRows {
				m.cursor -= inventory.ChecklistRows
			}
		case key.Matches(msg, keys.Right):
			if m.cursor+inventory.ChecklistRows < n {
				m.cursor += inventory.ChecklistRows
			}
		case key.Matches(msg, keys.Toggle):
			e := m.list.Entries[m.cursor]
			m.list.Set(e.Name, !e.Checked)
			m.dirty = true
			m.status = ""
		case key.Matches(msg, keys.Save):
			if m.saving {
				return m, nil
			}
			m.saving = true
			return m, m.save()
		}
	}
	return m, nil
}

// save copies the entries so later toggles don't race the write.
func (m Model) save() tea.Cmd {
	list := inventory.Checklist{Entries: append(m.list.Entries[:0:0], m.list.Entries...)}
	return func() tea.Msg {
		return savedMsg{err: m.saver.SaveChecklist(m.ctx, list)}
	}
}

func (m Model) View() string {
	var b strings.Builder

	packed := 0
	for _, e := range m.list.Entries {
		if e.Checked {
			packed++
		}
	}
	fmt.Fprintf(&b, "%s  %s\n\n",
		titleStyle.Render("Gear checklist"),
		mutedStyle.Render(fmt.Sprintf("%d/%d packed", packed, len(m.list.Entries))),
	)

	if len(m.list.Entries) == 0 {
		b.WriteString(mutedStyle.Render("No gear items found.") + "\n")
	} else {
		b.WriteString(m.grid() + "\n")
	}

	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render("✖ "+m.err.Error()) + "\n")
	case m.status != "":
		b.WriteString(successStyle.Render("✔ "+m.status) + "\n")
	case m.dirty:
		b.WriteString(mutedStyle.Render("unsaved changes") + "\n")
	}
	b.WriteString(m.help.View(keys))
	return b.String()
}

func (m Model) grid() string {
	cols := make([]string, 0, m.list.Columns())
	for c := 0; c < m.list.Columns(); c++ {
		var lines []string
		for r := 0; r < inventory.ChecklistRows; r++ {
			i := c*inventory.ChecklistRows + r
			if i >= len(m.list.Entries) {
				break
			}
			lines = append(lines, m.cell(i))
		}
		cols = append(cols, columnStyle.Render(strings.Join(lines, "\n")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m Model) cell(i int) string {
	e := m.list.Entries[i]
	box := boxUnchecked
	if e.Checked {
		box = successStyle.Render(boxChecked)
	}
	name := e.Name
	if i == m.cursor {
		name = selectedStyle.Render(name)
	}
	return box + " " + name
}

// Run shows the checklist until the user exits.
func Run(ctx context.Context, saver Saver, list inventory.Checklist) error {
	p := tea.NewProgram(New(ctx, saver, list), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running checklist: %w", err)
	}
	if fm, ok := final.(Model); ok && fm.Dirty() {
		fmt.Println(mutedStyle.Render("unsaved checklist changes discarded"))
	}
	return nil
}
