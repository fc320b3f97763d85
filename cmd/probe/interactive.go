package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/emberlang/ember-runtime/hashmap"
	"github.com/emberlang/ember-runtime/hashset"
	"github.com/emberlang/ember-runtime/list"
	"github.com/emberlang/ember-runtime/rc"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#D97706")).
			Padding(0, 1)

	statStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const historyLimit = 16

// probeModel is a command-line playground over one list, one map, one
// set and a table of tracked objects.
type probeModel struct {
	input   textinput.Model
	history []string
	nums    *list.List[int64]
	table   *hashmap.Map[string, int64]
	tags    *hashset.Set[string]
	objs    map[int]*tracer
	nextID  int
}

func newProbeModel() *probeModel {
	ti := textinput.New()
	ti.Placeholder = "command (try: help)"
	ti.Prompt = "> "
	ti.Width = 60
	ti.Focus()
	return &probeModel{
		input: ti,
		nums:  list.New[int64](),
		table: hashmap.New[string, int64](),
		tags:  hashset.New[string](),
		objs:  make(map[int]*tracer),
	}
}

func (m *probeModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *probeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "quit" || line == "q" {
				return m, tea.Quit
			}
			if line != "" {
				m.record(line, m.eval(line))
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *probeModel) record(line, out string) {
	m.history = append(m.history, "> "+line, out)
	if len(m.history) > historyLimit {
		m.history = m.history[len(m.history)-historyLimit:]
	}
}

// eval executes one playground command and returns the rendered result.
func (m *probeModel) eval(line string) string {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help":
		return helpStyle.Render(
			"list: push N | pop | sort | reverse | distinct | show\n" +
				"map:  put K N | get K | del K | keys\n" +
				"set:  add K | has K | drop K | members\n" +
				"rc:   new | retain ID | release ID | live")

	case "push":
		n, err := needInt(args, 0)
		if err != nil {
			return errorStyle.Render(err.Error())
		}
		m.nums.Push(n)
		return resultStyle.Render(fmt.Sprintf("len %d", m.nums.Len()))
	case "pop":
		v, err := m.nums.TryPop()
		if err != nil {
			return errorStyle.Render(err.Error())
		}
		return resultStyle.Render(fmt.Sprintf("%d", v))
	case "sort":
		list.Sort(m.nums)
		return resultStyle.Render(fmt.Sprintf("%v", m.nums.ToSlice()))
	case "reverse":
		m.nums.Reverse()
		return resultStyle.Render(fmt.Sprintf("%v", m.nums.ToSlice()))
	case "distinct":
		m.nums = list.Distinct(m.nums)
		return resultStyle.Render(fmt.Sprintf("%v", m.nums.ToSlice()))
	case "show":
		return resultStyle.Render(fmt.Sprintf("%v", m.nums.ToSlice()))

	case "put":
		if len(args) < 2 {
			return errorStyle.Render("usage: put K N")
		}
		n, err := needInt(args, 1)
		if err != nil {
			return errorStyle.Render(err.Error())
		}
		m.table.Put(args[0], n)
		return resultStyle.Render(fmt.Sprintf("%d entries", m.table.Len()))
	case "get":
		if len(args) < 1 {
			return errorStyle.Render("usage: get K")
		}
		v, ok := m.table.Lookup(args[0])
		if !ok {
			return resultStyle.Render("absent (Get would yield 0)")
		}
		return resultStyle.Render(fmt.Sprintf("%d", v))
	case "del":
		if len(args) < 1 {
			return errorStyle.Render("usage: del K")
		}
		return resultStyle.Render(fmt.Sprintf("removed: %v", m.table.Delete(args[0])))
	case "keys":
		return resultStyle.Render(fmt.Sprintf("%v", m.table.Keys().ToSlice()))

	case "add":
		if len(args) < 1 {
			return errorStyle.Render("usage: add K")
		}
		return resultStyle.Render(fmt.Sprintf("added: %v", m.tags.Add(args[0])))
	case "has":
		if len(args) < 1 {
			return errorStyle.Render("usage: has K")
		}
		return resultStyle.Render(fmt.Sprintf("%v", m.tags.Has(args[0])))
	case "drop":
		if len(args) < 1 {
			return errorStyle.Render("usage: drop K")
		}
		return resultStyle.Render(fmt.Sprintf("removed: %v", m.tags.Delete(args[0])))
	case "members":
		return resultStyle.Render(fmt.Sprintf("%v", m.tags.ToList().ToSlice()))

	case "new":
		o := rc.New[tracer]()
		o.id = m.nextID
		m.nextID++
		m.objs[o.id] = o
		return resultStyle.Render(fmt.Sprintf("object %d, refs %d", o.id, o.Refs()))
	case "retain":
		o, err := m.needObj(args)
		if err != nil {
			return errorStyle.Render(err.Error())
		}
		rc.Retain(o)
		return resultStyle.Render(fmt.Sprintf("object %d, refs %d", o.id, o.Refs()))
	case "release":
		o, err := m.needObj(args)
		if err != nil {
			return errorStyle.Render(err.Error())
		}
		rc.Release(o)
		if !o.Alive() {
			delete(m.objs, o.id)
			return resultStyle.Render(fmt.Sprintf("object %d freed", o.id))
		}
		return resultStyle.Render(fmt.Sprintf("object %d, refs %d", o.id, o.Refs()))
	case "live":
		return resultStyle.Render(fmt.Sprintf("%d", rc.Live()))
	}
	return errorStyle.Render("unknown command, try: help")
}

func needInt(args []string, i int) (int64, error) {
	if len(args) <= i {
		return 0, fmt.Errorf("missing numeric argument")
	}
	n, err := strconv.ParseInt(args[i], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %s", args[i])
	}
	return n, nil
}

func (m *probeModel) needObj(args []string) (*tracer, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("missing object id")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("bad object id: %s", args[0])
	}
	o, ok := m.objs[id]
	if !ok {
		return nil, fmt.Errorf("no live object %d", id)
	}
	return o, nil
}

func (m *probeModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Ember Runtime Probe"))
	b.WriteString(" ")
	b.WriteString(statStyle.Render(fmt.Sprintf(
		"list %d • map %d • set %d • live %d",
		m.nums.Len(), m.table.Len(), m.tags.Len(), rc.Live())))
	b.WriteString("\n\n")

	for _, line := range m.history {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter run • esc quit"))
	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newProbeModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
