package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"ischedule/internal/db"
	"ischedule/internal/models"
	"ischedule/internal/ui/keys"
	"ischedule/internal/ui/styles"
)

type listsMode int

const (
	listsModeNormal listsMode = iota
	listsModeEditing
	listsModeDeleting
)

// listRow pairs a list with its task counts for display.
type listRow struct {
	list       models.TaskList
	inProgress int
	completed  int
}

type listsLoadedMsg struct {
	rows []listRow
	err  error
}

// ListsView is the list overview, the app's home screen.
type ListsView struct {
	db     *db.DB
	log    zerolog.Logger
	styles *styles.Styles
	keys   keys.KeyMap

	width  int
	height int

	mode    listsMode
	rows    []listRow
	cursor  int
	errText string

	// edit form state
	editing   *models.TaskList // nil means creating
	nameInput textinput.Model
	colorIdx  int
	formFocus int // 0 name, 1 color
}

func NewListsView(database *db.DB, log zerolog.Logger) *ListsView {
	name := textinput.New()
	name.Placeholder = "List name"
	name.CharLimit = 60

	return &ListsView{
		db:        database,
		log:       log.With().Str("view", "lists").Logger(),
		styles:    styles.NewStyles(),
		keys:      keys.DefaultKeyMap(),
		nameInput: name,
	}
}

func (v *ListsView) Init() tea.Cmd {
	return v.load
}

func (v *ListsView) load() tea.Msg {
	lists, err := v.db.ListLists()
	if err != nil {
		return listsLoadedMsg{err: err}
	}
	rows := make([]listRow, 0, len(lists))
	for _, l := range lists {
		open, err := v.db.CountTasksByStatus(models.StatusInProgress, l.ID)
		if err != nil {
			return listsLoadedMsg{err: err}
		}
		done, err := v.db.CountTasksByStatus(models.StatusCompleted, l.ID)
		if err != nil {
			return listsLoadedMsg{err: err}
		}
		rows = append(rows, listRow{list: l, inProgress: open, completed: done})
	}
	return listsLoadedMsg{rows: rows}
}

func (v *ListsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case listsLoadedMsg:
		if msg.err != nil {
			v.log.Error().Err(msg.err).Msg("loading lists")
			v.errText = "Could not load lists"
			return v, nil
		}
		v.errText = ""
		v.rows = msg.rows
		if v.cursor >= len(v.rows) {
			v.cursor = max(0, len(v.rows)-1)
		}
		return v, nil

	case tea.KeyMsg:
		switch v.mode {
		case listsModeEditing:
			return v.updateEditing(msg)
		case listsModeDeleting:
			return v.updateDeleting(msg)
		}
		return v.updateNormal(msg)
	}

	return v, nil
}

func (v *ListsView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit

	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}

	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(v.rows)-1 {
			v.cursor++
		}

	case key.Matches(msg, v.keys.Enter):
		if v.cursor < len(v.rows) {
			list := v.rows[v.cursor].list
			return v, func() tea.Msg { return SelectedList{List: list} }
		}

	case key.Matches(msg, v.keys.Stats):
		return v, func() tea.Msg { return ShowStats{} }

	case key.Matches(msg, v.keys.New):
		v.openForm(nil)
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Edit):
		if v.cursor < len(v.rows) {
			list := v.rows[v.cursor].list
			v.openForm(&list)
			return v, textinput.Blink
		}

	case key.Matches(msg, v.keys.Delete):
		if v.cursor < len(v.rows) {
			v.mode = listsModeDeleting
		}
	}

	return v, nil
}

func (v *ListsView) openForm(list *models.TaskList) {
	v.mode = listsModeEditing
	v.editing = list
	v.formFocus = 0
	v.nameInput.Focus()
	if list != nil {
		v.nameInput.SetValue(list.Name)
		v.colorIdx = paletteIndex(list.Color)
	} else {
		v.nameInput.SetValue("")
		v.colorIdx = 0
	}
}

func paletteIndex(c models.Color) int {
	for i, pc := range models.Palette() {
		if pc == c {
			return i
		}
	}
	return 0
}

func (v *ListsView) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	palette := models.Palette()

	switch {
	case key.Matches(msg, v.keys.Back):
		v.mode = listsModeNormal
		v.nameInput.Blur()
		return v, nil

	case key.Matches(msg, v.keys.Tab):
		v.formFocus = (v.formFocus + 1) % 2
		if v.formFocus == 0 {
			v.nameInput.Focus()
		} else {
			v.nameInput.Blur()
		}
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		name := strings.TrimSpace(v.nameInput.Value())
		if name == "" {
			v.errText = "Name cannot be empty"
			return v, nil
		}
		v.errText = ""
		color := palette[v.colorIdx]
		return v, v.saveList(name, color)
	}

	if v.formFocus == 1 {
		switch msg.String() {
		case "left", "h":
			v.colorIdx = (v.colorIdx + len(palette) - 1) % len(palette)
			return v, nil
		case "right", "l":
			v.colorIdx = (v.colorIdx + 1) % len(palette)
			return v, nil
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.nameInput, cmd = v.nameInput.Update(msg)
	return v, cmd
}

func (v *ListsView) saveList(name string, color models.Color) tea.Cmd {
	editing := v.editing
	v.mode = listsModeNormal
	v.nameInput.Blur()
	return func() tea.Msg {
		if editing != nil {
			if err := v.db.UpdateList(editing.ID, name, color); err != nil {
				return listsLoadedMsg{err: err}
			}
			v.log.Info().Str("list", editing.ID).Msg("list updated")
		} else {
			created, err := v.db.CreateList(name, color)
			if err != nil {
				return listsLoadedMsg{err: err}
			}
			v.log.Info().Str("list", created.ID).Msg("list created")
		}
		return v.load()
	}
}

func (v *ListsView) updateDeleting(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.mode = listsModeNormal
		if v.cursor >= len(v.rows) {
			return v, nil
		}
		id := v.rows[v.cursor].list.ID
		return v, func() tea.Msg {
			if err := v.db.DeleteList(id); err != nil {
				return listsLoadedMsg{err: err}
			}
			v.log.Info().Str("list", id).Msg("list deleted")
			return v.load()
		}
	case "n", "N", "esc":
		v.mode = listsModeNormal
	}
	return v, nil
}

func (v *ListsView) View() string {
	switch v.mode {
	case listsModeEditing:
		return v.renderForm()
	case listsModeDeleting:
		return v.renderDeleteConfirm()
	}
	return v.renderList()
}

func (v *ListsView) renderList() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	var totalOpen, totalDone int
	for _, row := range v.rows {
		totalOpen += row.inProgress
		totalDone += row.completed
	}

	var b strings.Builder
	b.WriteString(s.Title.Render("My Lists"))
	b.WriteString("\n")
	b.WriteString(s.TitleMuted.Render(
		fmt.Sprintf("%d in progress, %d completed", totalOpen, totalDone)))
	b.WriteString("\n\n")

	if len(v.rows) == 0 {
		b.WriteString(s.TitleMuted.Render("No lists yet. Press n to create one."))
	}

	for i, row := range v.rows {
		dot := lipgloss.NewStyle().
			Foreground(styles.ListColor(row.list.Color)).
			Render("●")
		counts := s.TitleMuted.Render(
			fmt.Sprintf("%d open, %d done", row.inProgress, row.completed))
		line := fmt.Sprintf("%s %s  %s", dot, row.list.Name, counts)
		if i == v.cursor {
			b.WriteString(s.ListSelected.Width(contentWidth - 2).Render(line))
		} else {
			b.WriteString(s.ListItem.Width(contentWidth - 2).Render(line))
		}
		b.WriteString("\n")
	}

	if v.errText != "" {
		b.WriteString("\n" + s.FieldError.Render(v.errText))
	}

	b.WriteString("\n")
	b.WriteString(s.Help.Render("↵ open • n new • e edit • d delete • s stats • q quit"))

	return styles.CenterView(b.String(), v.width, v.height)
}

func (v *ListsView) renderForm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	inputWidth := clamp(contentWidth-6, 20, 40)

	title := "New List"
	if v.editing != nil {
		title = "Edit List"
	}

	inputStyle := s.Input
	if v.formFocus == 0 {
		inputStyle = s.InputFocused
	}

	var swatches []string
	for i, c := range models.Palette() {
		swatch := lipgloss.NewStyle().
			Foreground(styles.ListColor(c)).
			Render("●")
		if i == v.colorIdx {
			swatch = "[" + swatch + "]"
		} else {
			swatch = " " + swatch + " "
		}
		swatches = append(swatches, swatch)
	}
	colorRow := strings.Join(swatches, " ")
	if v.formFocus == 1 {
		colorRow = s.SegmentActive.Render(colorRow)
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(title),
		"",
		"Name:",
		inputStyle.Width(inputWidth).Render(v.nameInput.View()),
		"",
		"Color:  "+colorRow,
		"",
		s.Help.Render("tab field • ←/→ color • ↵ save • esc cancel"),
	)
	if v.errText != "" {
		form = lipgloss.JoinVertical(lipgloss.Left, form, "", s.FieldError.Render(v.errText))
	}

	return styles.CenterView(s.Panel.Render(form), v.width, v.height)
}

func (v *ListsView) renderDeleteConfirm() string {
	s := v.styles
	name := ""
	if v.cursor < len(v.rows) {
		name = v.rows[v.cursor].list.Name
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Delete List"),
		"",
		fmt.Sprintf("Delete %q and all of its tasks?", name),
		"",
		s.Help.Render("y confirm • n cancel"),
	)
	return styles.CenterView(s.Panel.Render(body), v.width, v.height)
}
