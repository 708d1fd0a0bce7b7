package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Operation identifies one of the Drive operations the menu offers.
type Operation int

const (
	OpListFolder Operation = iota
	OpDownload
	OpUpload
	OpCreateFolder
	OpDelete
	OpCopy
)

// Title returns the menu label for the operation.
func (o Operation) Title() string {
	switch o {
	case OpListFolder:
		return "Find files in folder"
	case OpDownload:
		return "Download file"
	case OpUpload:
		return "Upload file"
	case OpCreateFolder:
		return "Create folder"
	case OpDelete:
		return "Delete file"
	case OpCopy:
		return "Copy file"
	default:
		return "Unknown"
	}
}

// operations is the menu order.
var operations = []Operation{
	OpListFolder,
	OpDownload,
	OpUpload,
	OpCreateFolder,
	OpDelete,
	OpCopy,
}

// Parameter keys used in Request.Args.
const (
	ArgFolder  = "folder"
	ArgFile    = "file"
	ArgDir     = "dir"
	ArgPath    = "path"
	ArgParent  = "parent"
	ArgNewName = "new_name"
)

// field is one parameter prompt for an operation.
type field struct {
	key      string
	prompt   string
	optional bool
}

var opFields = map[Operation][]field{
	OpListFolder: {
		{key: ArgFolder, prompt: "Folder name"},
	},
	OpDownload: {
		{key: ArgFile, prompt: "File name"},
		{key: ArgDir, prompt: "Local folder", optional: true},
	},
	OpUpload: {
		{key: ArgPath, prompt: "Local file path"},
		{key: ArgParent, prompt: "Parent folder name", optional: true},
	},
	OpCreateFolder: {
		{key: ArgFolder, prompt: "Folder name"},
		{key: ArgParent, prompt: "Parent folder name", optional: true},
	},
	OpDelete: {
		{key: ArgFile, prompt: "File name"},
	},
	OpCopy: {
		{key: ArgFile, prompt: "File name"},
		{key: ArgNewName, prompt: "New name", optional: true},
		{key: ArgParent, prompt: "Parent folder name", optional: true},
	},
}

// Request is the operation and parameters the user confirmed.
type Request struct {
	Op   Operation
	Args map[string]string
}

type phase int

const (
	phaseChoosing phase = iota
	phaseFilling
	phaseDone
	phaseAborted
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// Model is the Bubble Tea model for the operation menu.
type Model struct {
	phase    phase
	cursor   int
	op       Operation
	fields   []field
	fieldIdx int
	args     map[string]string
	input    textinput.Model
	err      string
}

// NewModel creates the menu model in its initial choosing phase.
func NewModel() Model {
	ti := textinput.New()
	ti.CharLimit = 256
	return Model{
		args:  make(map[string]string),
		input: ti,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.phase = phaseAborted
		return m, tea.Quit
	}

	switch m.phase {
	case phaseChoosing:
		return m.updateChoosing(keyMsg)
	case phaseFilling:
		return m.updateFilling(keyMsg)
	default:
		return m, tea.Quit
	}
}

func (m Model) updateChoosing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.phase = phaseAborted
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(operations)-1 {
			m.cursor++
		}
	case "1", "2", "3", "4", "5", "6":
		m.cursor = int(msg.String()[0] - '1')
		return m.startFilling()
	case "enter":
		return m.startFilling()
	}
	return m, nil
}

func (m Model) startFilling() (tea.Model, tea.Cmd) {
	m.op = operations[m.cursor]
	m.fields = opFields[m.op]
	m.fieldIdx = 0
	m.phase = phaseFilling
	m.input.SetValue("")
	m.input.Placeholder = placeholder(m.fields[0])
	m.input.Focus()
	return m, textinput.Blink
}

func (m Model) updateFilling(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		f := m.fields[m.fieldIdx]
		value := strings.TrimSpace(m.input.Value())
		if value == "" && !f.optional {
			m.err = f.prompt + " is required"
			return m, nil
		}
		m.err = ""
		if value != "" {
			m.args[f.key] = value
		}

		m.fieldIdx++
		if m.fieldIdx >= len(m.fields) {
			m.phase = phaseDone
			return m, tea.Quit
		}
		m.input.SetValue("")
		m.input.Placeholder = placeholder(m.fields[m.fieldIdx])
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func placeholder(f field) string {
	if f.optional {
		return "optional"
	}
	return ""
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	switch m.phase {
	case phaseChoosing:
		b.WriteString(titleStyle.Render("Operations"))
		b.WriteString("\n\n")
		for i, op := range operations {
			line := fmt.Sprintf("%d. %s", i+1, op.Title())
			if i == m.cursor {
				line = selectedStyle.Render("> " + line)
			} else {
				line = "  " + line
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter/1-6 select · q quit"))
	case phaseFilling:
		b.WriteString(titleStyle.Render(m.op.Title()))
		b.WriteString("\n\n")
		f := m.fields[m.fieldIdx]
		b.WriteString(promptStyle.Render(f.prompt + ": "))
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.err != "" {
			b.WriteString(selectedStyle.Render(m.err))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter confirm · esc cancel"))
	}

	b.WriteString("\n")
	return b.String()
}

// Result returns the confirmed request. The boolean is false when the user
// aborted the session.
func (m Model) Result() (Request, bool) {
	if m.phase != phaseDone {
		return Request{}, false
	}
	return Request{Op: m.op, Args: m.args}, true
}
