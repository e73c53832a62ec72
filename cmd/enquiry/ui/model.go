package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shandysiswandi/enquiry/internal/enquiry"
)

const (
	focusName = iota
	focusEmail
	focusPhone
	focusCompany
	focusMessage
	focusAvailable
	focusButtons
	focusSelected
	focusSubmit
	focusCount
)

type button int

const (
	btnAllToSelected button = iota
	btnFirstToSelected
	btnFirstToAvailable
	btnAllToAvailable
	buttonCount
)

var buttonLabels = [buttonCount]string{"»", "›", "‹", "«"}

var fieldLabels = [focusAvailable]string{"Name *", "Email *", "Phone *", "Company", "Message"}

type submitDoneMsg struct {
	status enquiry.Status
	err    error
}

type statusMsg struct{}

// Signal wakes the UI when the controller changes status on its own, for
// example when the hide timer fires. Notifications coalesce.
type Signal chan struct{}

// NewSignal returns a Signal ready to be used as ControllerConfig.OnChange.
func NewSignal() Signal {
	return make(Signal, 1)
}

// Notify records that the status changed without blocking the caller.
func (s Signal) Notify(enquiry.Status) {
	select {
	case s <- struct{}{}:
	default:
	}
}

// Model is the bubbletea model of the enquiry form.
type Model struct {
	ctx     context.Context
	session *enquiry.Session
	signal  Signal
	styles  Styles

	inputs  []textinput.Model
	focus   int
	cursors [2]int
	button  button

	spinner    spinner.Model
	submitting bool
	status     enquiry.Status
	title      string
}

// New builds the form for session. signal may be nil when status changes
// only need to be seen after the user's own actions.
func New(ctx context.Context, session *enquiry.Session, signal Signal, title string) Model {
	inputs := make([]textinput.Model, len(fieldLabels))
	for i := range inputs {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 256
		in.Width = 40
		inputs[i] = in
	}
	inputs[focusName].Placeholder = "Your full name"
	inputs[focusEmail].Placeholder = "you@company.com"
	inputs[focusPhone].Placeholder = "+91 ..."
	inputs[focusCompany].Placeholder = "Company name"
	inputs[focusMessage].Placeholder = "Tell us about your requirements"
	inputs[focusMessage].CharLimit = 2000
	inputs[focusName].Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctx:     ctx,
		session: session,
		signal:  signal,
		styles:  DefaultStyles(),
		inputs:  inputs,
		spinner: sp,
		title:   title,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForStatus())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case submitDoneMsg:
		m.submitting = false
		if errors.Is(msg.err, enquiry.ErrSubmitInFlight) || errors.Is(msg.err, enquiry.ErrHoneypot) {
			return m, nil
		}
		m.status = msg.status
		if msg.status.Kind == enquiry.StatusSuccess {
			m.resetForm()
		}
		return m, nil

	case statusMsg:
		m.status = m.session.Controller().Status()
		return m, m.waitForStatus()

	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		return m.moveFocus(1)
	case "shift+tab":
		return m.moveFocus(-1)
	case "ctrl+s":
		return m.startSubmit()
	}

	switch m.focus {
	case focusAvailable, focusSelected:
		m.handleListKey(msg)
		return m, nil
	case focusButtons:
		m.handleButtonKey(msg)
		return m, nil
	case focusSubmit:
		if msg.String() == "enter" || msg.String() == " " {
			return m.startSubmit()
		}
		return m, nil
	}

	if msg.String() == "enter" {
		return m.moveFocus(1)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.syncForm()
	return m, cmd
}

func (m *Model) handleListKey(msg tea.KeyMsg) {
	list, idx := m.session.Selector().Available(), 0
	if m.focus == focusSelected {
		list, idx = m.session.Selector().Selected(), 1
	}

	switch msg.String() {
	case "up", "k":
		if m.cursors[idx] > 0 {
			m.cursors[idx]--
		}
	case "down", "j":
		if m.cursors[idx] < len(list)-1 {
			m.cursors[idx]++
		}
	case "enter", " ":
		if len(list) == 0 {
			return
		}
		_ = m.session.Selector().Toggle(list[m.cursors[idx]].ID)
		m.syncForm()
	}
	m.clampCursors()
}

func (m *Model) handleButtonKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "left", "h":
		if m.button > 0 {
			m.button--
		}
	case "right", "l":
		if m.button < buttonCount-1 {
			m.button++
		}
	case "enter", " ":
		m.press(m.button)
	}
}

// press runs a move button. Disabled buttons do nothing.
func (m *Model) press(b button) {
	if !m.enabled(b) {
		return
	}

	sel := m.session.Selector()
	switch b {
	case btnAllToSelected:
		sel.MoveAllToSelected()
	case btnFirstToSelected:
		sel.MoveFirstToSelected()
	case btnFirstToAvailable:
		sel.MoveFirstToAvailable()
	case btnAllToAvailable:
		sel.MoveAllToAvailable()
	}
	m.syncForm()
	m.clampCursors()
}

func (m Model) enabled(b button) bool {
	if b == btnAllToSelected || b == btnFirstToSelected {
		return m.session.Selector().CanMoveToSelected()
	}
	return m.session.Selector().CanMoveToAvailable()
}

func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}

	m.focus = (m.focus + delta + focusCount) % focusCount

	if m.focus < len(m.inputs) {
		return m, m.inputs[m.focus].Focus()
	}
	return m, nil
}

func (m Model) startSubmit() (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	m.submitting = true

	ctx, ctrl, payload := m.ctx, m.session.Controller(), m.session.Payload()
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		st, err := ctrl.Submit(ctx, payload)
		return submitDoneMsg{status: st, err: err}
	})
}

func (m Model) waitForStatus() tea.Cmd {
	if m.signal == nil {
		return nil
	}

	ctx, signal := m.ctx, m.signal
	return func() tea.Msg {
		select {
		case <-signal:
			return statusMsg{}
		case <-ctx.Done():
			return nil
		}
	}
}

func (m *Model) syncForm() {
	m.session.Update(func(f *enquiry.Form) {
		f.Name = m.inputs[focusName].Value()
		f.Email = m.inputs[focusEmail].Value()
		f.Phone = m.inputs[focusPhone].Value()
		f.Company = m.inputs[focusCompany].Value()
		f.Message = m.inputs[focusMessage].Value()
	})
}

func (m *Model) resetForm() {
	m.session.Reset()
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.cursors = [2]int{}
}

func (m *Model) clampCursors() {
	lens := [2]int{len(m.session.Selector().Available()), len(m.session.Selector().Selected())}
	for i, n := range lens {
		m.cursors[i] = max(0, min(m.cursors[i], n-1))
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(m.title))
	b.WriteString("\n\n")

	for i, in := range m.inputs {
		label := m.styles.Label.Render(fmt.Sprintf("%-9s", fieldLabels[i]))
		b.WriteString(label + " " + in.View() + "\n")
	}
	b.WriteString("\n")

	sel := m.session.Selector()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		m.renderList("Available Products", sel.Available(), 0, focusAvailable, "All products selected!"),
		m.renderButtons(),
		m.renderList("Selected Products", sel.Selected(), 1, focusSelected, "No products selected"),
	))
	b.WriteString("\n\n")

	b.WriteString(m.renderSubmit())
	b.WriteString("\n")

	if m.status.Visible {
		style := m.styles.Success
		if m.status.Kind == enquiry.StatusError {
			style = m.styles.Error
		}
		b.WriteString("\n" + style.Render(m.status.Message) + "\n")
	}

	b.WriteString("\n" + m.styles.Help.Render("tab/shift+tab: move  •  enter/space: choose  •  ctrl+s: send  •  esc: quit"))
	return b.String()
}

func (m Model) renderList(title string, items []enquiry.Product, idx, focus int, empty string) string {
	var b strings.Builder
	b.WriteString(m.styles.Label.Render(fmt.Sprintf("%s (%d)", title, len(items))) + "\n")

	if len(items) == 0 {
		b.WriteString(m.styles.Empty.Render(empty))
	}
	for i, p := range items {
		if m.focus == focus && i == m.cursors[idx] {
			b.WriteString(m.styles.Cursor.Render("> " + p.Name))
		} else {
			b.WriteString(m.styles.Item.Render("  " + p.Name))
		}
		if i < len(items)-1 {
			b.WriteString("\n")
		}
	}

	pane := m.styles.Pane
	if m.focus == focus {
		pane = m.styles.Focused
	}
	return pane.Render(b.String())
}

func (m Model) renderButtons() string {
	rows := make([]string, 0, buttonCount)
	for b := btnAllToSelected; b < buttonCount; b++ {
		style := m.styles.Button
		switch {
		case !m.enabled(b):
			style = m.styles.Disabled
		case m.focus == focusButtons && m.button == b:
			style = m.styles.Active
		}
		rows = append(rows, style.Render(buttonLabels[b]))
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(lipgloss.JoinVertical(lipgloss.Center, rows...))
}

func (m Model) renderSubmit() string {
	if m.submitting {
		return m.spinner.View() + " Sending..."
	}

	style := m.styles.Button
	if m.focus == focusSubmit {
		style = m.styles.Active
	}
	return style.Render("Send Enquiry")
}
