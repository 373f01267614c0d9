package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"ischedule/internal/db"
	"ischedule/internal/models"
	"ischedule/internal/schedule"
	"ischedule/internal/ui/keys"
	"ischedule/internal/ui/styles"
)

const (
	dueDateFormat = "2006-01-02"
	dueTimeFormat = "15:04"
)

type tasksMode int

const (
	tasksModeNormal tasksMode = iota
	tasksModeSearching
	tasksModeEditing
	tasksModeDeleting
)

type tasksLoadedMsg struct {
	tasks []models.Task
	err   error
}

// Edit form field order
const (
	fieldTitle = iota
	fieldDescription
	fieldDueDate
	fieldDueTime
	fieldPriority
	fieldAlert
	fieldCount
)

// TasksView shows and edits the tasks of a single list.
type TasksView struct {
	db        *db.DB
	scheduler *schedule.Scheduler
	log       zerolog.Logger
	styles    *styles.Styles
	keys      keys.KeyMap

	list models.TaskList

	width  int
	height int

	mode    tasksMode
	tasks   []models.Task
	cursor  int
	errText string

	filter models.Filter
	sort   models.SortOptions
	search textinput.Model

	// edit form state
	editing     *models.Task // nil means creating
	titleInput  textinput.Model
	descInput   textinput.Model
	dateInput   textinput.Model
	timeInput   textinput.Model
	priorityIdx int
	alertIdx    int
	formFocus   int
	formErr     string
}

func NewTasksView(database *db.DB, scheduler *schedule.Scheduler, log zerolog.Logger, list models.TaskList) *TasksView {
	search := textinput.New()
	search.Placeholder = "Search tasks"
	search.CharLimit = 60

	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 100

	desc := textinput.New()
	desc.Placeholder = "Description"
	desc.CharLimit = 200

	date := textinput.New()
	date.Placeholder = dueDateFormat
	date.CharLimit = len(dueDateFormat)

	tim := textinput.New()
	tim.Placeholder = dueTimeFormat
	tim.CharLimit = len(dueTimeFormat)

	return &TasksView{
		db:         database,
		scheduler:  scheduler,
		log:        log.With().Str("view", "tasks").Str("list", list.ID).Logger(),
		styles:     styles.NewStyles(),
		keys:       keys.DefaultKeyMap(),
		list:       list,
		filter:     models.Filter{Status: models.FilterAll},
		search:     search,
		titleInput: title,
		descInput:  desc,
		dateInput:  date,
		timeInput:  tim,
	}
}

func (v *TasksView) Init() tea.Cmd {
	return v.load
}

func (v *TasksView) load() tea.Msg {
	tasks, err := v.db.ListTasks(v.list.ID)
	return tasksLoadedMsg{tasks: tasks, err: err}
}

// visible applies the current filter and sort to the loaded tasks.
func (v *TasksView) visible() []models.Task {
	tasks := models.FilterTasks(v.tasks, v.filter)
	models.SortTasks(tasks, v.sort)
	return tasks
}

func (v *TasksView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case tasksLoadedMsg:
		if msg.err != nil {
			v.log.Error().Err(msg.err).Msg("loading tasks")
			v.errText = "Could not load tasks"
			return v, nil
		}
		v.errText = ""
		v.tasks = msg.tasks
		if n := len(v.visible()); v.cursor >= n {
			v.cursor = max(0, n-1)
		}
		return v, nil

	case tea.KeyMsg:
		switch v.mode {
		case tasksModeSearching:
			return v.updateSearching(msg)
		case tasksModeEditing:
			return v.updateEditing(msg)
		case tasksModeDeleting:
			return v.updateDeleting(msg)
		}
		return v.updateNormal(msg)
	}

	return v, nil
}

func (v *TasksView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := v.visible()

	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit

	case key.Matches(msg, v.keys.Back):
		return v, func() tea.Msg { return BackToLists{} }

	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}

	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(visible)-1 {
			v.cursor++
		}

	case key.Matches(msg, v.keys.Search):
		v.mode = tasksModeSearching
		v.search.Focus()
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Status):
		v.filter.Status = nextStatusFilter(v.filter.Status)
		v.cursor = 0

	case key.Matches(msg, v.keys.SortDate):
		v.sort.ByDate = !v.sort.ByDate

	case key.Matches(msg, v.keys.SortPrio):
		v.sort.ByPriority = !v.sort.ByPriority

	case key.Matches(msg, v.keys.Toggle), key.Matches(msg, v.keys.Enter):
		if v.cursor < len(visible) {
			task := visible[v.cursor]
			return v, func() tea.Msg {
				if err := v.db.SetTaskStatus(task.ID, task.Status.Toggled()); err != nil {
					return tasksLoadedMsg{err: err}
				}
				return v.load()
			}
		}

	case key.Matches(msg, v.keys.New):
		v.openForm(nil)
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Edit):
		if v.cursor < len(visible) {
			task := visible[v.cursor]
			v.openForm(&task)
			return v, textinput.Blink
		}

	case key.Matches(msg, v.keys.Delete):
		if v.cursor < len(visible) {
			v.mode = tasksModeDeleting
		}
	}

	return v, nil
}

func nextStatusFilter(f models.StatusFilter) models.StatusFilter {
	switch f {
	case models.FilterAll:
		return models.FilterInProgress
	case models.FilterInProgress:
		return models.FilterCompleted
	}
	return models.FilterAll
}

func (v *TasksView) updateSearching(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.mode = tasksModeNormal
		v.search.Blur()
		v.search.SetValue("")
		v.filter.Search = ""
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		v.mode = tasksModeNormal
		v.search.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.search, cmd = v.search.Update(msg)
	v.filter.Search = v.search.Value()
	v.cursor = 0
	return v, cmd
}

func (v *TasksView) openForm(task *models.Task) {
	v.mode = tasksModeEditing
	v.editing = task
	v.formFocus = fieldTitle
	v.formErr = ""
	v.titleInput.Focus()
	v.descInput.Blur()
	v.dateInput.Blur()
	v.timeInput.Blur()

	if task != nil {
		v.titleInput.SetValue(task.Title)
		v.descInput.SetValue(task.Description)
		v.dateInput.SetValue(task.DueDate.Format(dueDateFormat))
		v.timeInput.SetValue(task.DueTime.Format(dueTimeFormat))
		v.priorityIdx = priorityIndex(task.Priority)
		v.alertIdx = alertIndex(task.Alert)
	} else {
		now := time.Now()
		v.titleInput.SetValue("")
		v.descInput.SetValue("")
		v.dateInput.SetValue(now.Format(dueDateFormat))
		v.timeInput.SetValue(now.Format(dueTimeFormat))
		v.priorityIdx = priorityIndex(models.PriorityMedium)
		v.alertIdx = 0
	}
}

func priorityIndex(p models.Priority) int {
	for i, pp := range models.Priorities() {
		if pp == p {
			return i
		}
	}
	return 0
}

func alertIndex(a models.AlertOption) int {
	for i, aa := range models.AlertOptions() {
		if aa == a {
			return i
		}
	}
	return 0
}

func (v *TasksView) focusField(idx int) {
	v.formFocus = idx
	v.titleInput.Blur()
	v.descInput.Blur()
	v.dateInput.Blur()
	v.timeInput.Blur()
	switch idx {
	case fieldTitle:
		v.titleInput.Focus()
	case fieldDescription:
		v.descInput.Focus()
	case fieldDueDate:
		v.dateInput.Focus()
	case fieldDueTime:
		v.timeInput.Focus()
	}
}

func (v *TasksView) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.mode = tasksModeNormal
		return v, nil

	case key.Matches(msg, v.keys.Tab):
		v.focusField((v.formFocus + 1) % fieldCount)
		return v, nil

	case msg.String() == "shift+tab":
		v.focusField((v.formFocus + fieldCount - 1) % fieldCount)
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		return v, v.saveTask()
	}

	switch v.formFocus {
	case fieldPriority:
		priorities := models.Priorities()
		switch msg.String() {
		case "left", "h":
			v.priorityIdx = (v.priorityIdx + len(priorities) - 1) % len(priorities)
		case "right", "l":
			v.priorityIdx = (v.priorityIdx + 1) % len(priorities)
		}
		return v, nil

	case fieldAlert:
		alerts := models.AlertOptions()
		switch msg.String() {
		case "left", "h":
			v.alertIdx = (v.alertIdx + len(alerts) - 1) % len(alerts)
		case "right", "l":
			v.alertIdx = (v.alertIdx + 1) % len(alerts)
		}
		return v, nil
	}

	var cmd tea.Cmd
	switch v.formFocus {
	case fieldTitle:
		v.titleInput, cmd = v.titleInput.Update(msg)
	case fieldDescription:
		v.descInput, cmd = v.descInput.Update(msg)
	case fieldDueDate:
		v.dateInput, cmd = v.dateInput.Update(msg)
	case fieldDueTime:
		v.timeInput, cmd = v.timeInput.Update(msg)
	}
	return v, cmd
}

func (v *TasksView) saveTask() tea.Cmd {
	title := strings.TrimSpace(v.titleInput.Value())
	if title == "" {
		v.formErr = "Title cannot be empty"
		return nil
	}
	dueDate, err := time.ParseInLocation(dueDateFormat, v.dateInput.Value(), time.Local)
	if err != nil {
		v.formErr = "Due date must be " + dueDateFormat
		return nil
	}
	dueTime, err := time.ParseInLocation(dueTimeFormat, v.timeInput.Value(), time.Local)
	if err != nil {
		v.formErr = "Due time must be " + dueTimeFormat
		return nil
	}

	task := models.Task{
		ListID:      v.list.ID,
		Title:       title,
		Description: strings.TrimSpace(v.descInput.Value()),
		DueDate:     dueDate,
		DueTime:     dueTime,
		Priority:    models.Priorities()[v.priorityIdx],
		Alert:       models.AlertOptions()[v.alertIdx],
	}
	if v.editing != nil {
		task.ID = v.editing.ID
		task.Status = v.editing.Status
		task.CreatedAt = v.editing.CreatedAt
	}

	editing := v.editing
	v.mode = tasksModeNormal
	v.formErr = ""

	return func() tea.Msg {
		if editing != nil {
			if err := v.db.UpdateTask(task); err != nil {
				return tasksLoadedMsg{err: err}
			}
			v.log.Info().Str("task", task.ID).Msg("task updated")
		} else {
			created, err := v.db.CreateTask(task)
			if err != nil {
				return tasksLoadedMsg{err: err}
			}
			task = *created
			v.log.Info().Str("task", task.ID).Msg("task created")
		}
		if task.Alert != models.AlertNone {
			v.scheduler.Schedule(task.Title, task.DueDate, task.DueTime, task.Alert)
		}
		return v.load()
	}
}

func (v *TasksView) updateDeleting(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.mode = tasksModeNormal
		visible := v.visible()
		if v.cursor >= len(visible) {
			return v, nil
		}
		id := visible[v.cursor].ID
		return v, func() tea.Msg {
			if err := v.db.DeleteTask(id); err != nil {
				return tasksLoadedMsg{err: err}
			}
			v.log.Info().Str("task", id).Msg("task deleted")
			return v.load()
		}
	case "n", "N", "esc":
		v.mode = tasksModeNormal
	}
	return v, nil
}

func (v *TasksView) View() string {
	switch v.mode {
	case tasksModeEditing:
		return v.renderForm()
	case tasksModeDeleting:
		return v.renderDeleteConfirm()
	}
	return v.renderList()
}

func (v *TasksView) renderList() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	dot := lipgloss.NewStyle().
		Foreground(styles.ListColor(v.list.Color)).
		Render("●")

	var b strings.Builder
	b.WriteString(s.Title.Render(dot + " " + v.list.Name))
	b.WriteString("\n")
	b.WriteString(v.renderFilterBar())
	b.WriteString("\n\n")

	visible := v.visible()
	if len(visible) == 0 {
		b.WriteString(s.TitleMuted.Render("No tasks here. Press n to add one."))
	}

	for i, t := range visible {
		b.WriteString(v.renderTaskRow(t, i == v.cursor, contentWidth))
		b.WriteString("\n")
	}

	if v.errText != "" {
		b.WriteString("\n" + s.FieldError.Render(v.errText))
	}

	b.WriteString("\n")
	b.WriteString(s.Help.Render(
		"↵/space toggle • n new • e edit • d delete • / search • f filter • 1 date • 2 priority • esc back"))

	return styles.CenterView(b.String(), v.width, v.height)
}

func (v *TasksView) renderFilterBar() string {
	s := v.styles

	segment := func(label string, active bool) string {
		if active {
			return s.SegmentActive.Render(label)
		}
		return s.Segment.Render(label)
	}

	parts := []string{
		segment("All", v.filter.Status == models.FilterAll),
		segment("In Progress", v.filter.Status == models.FilterInProgress),
		segment("Completed", v.filter.Status == models.FilterCompleted),
	}
	bar := strings.Join(parts, " ")

	var sorts []string
	if v.sort.ByPriority {
		sorts = append(sorts, "priority")
	}
	if v.sort.ByDate {
		sorts = append(sorts, "date")
	}
	if len(sorts) > 0 {
		bar += "  " + s.TitleMuted.Render("sorted by "+strings.Join(sorts, ", "))
	}

	if v.mode == tasksModeSearching || v.filter.Search != "" {
		bar += "\n" + s.InputFocused.Render(v.search.View())
	}
	return bar
}

func (v *TasksView) renderTaskRow(t models.Task, selected bool, width int) string {
	s := v.styles

	check := "[ ]"
	if t.Status == models.StatusCompleted {
		check = "[x]"
	}
	prio := lipgloss.NewStyle().
		Foreground(styles.PriorityColor(t.Priority)).
		Render("!")
	due := s.TitleMuted.Render(t.DueInstant().Format("Mon 02 Jan 15:04"))

	line := fmt.Sprintf("%s %s %s  %s", check, prio, t.Title, due)
	if t.Alert != models.AlertNone {
		line += " " + s.TitleMuted.Render("⏰")
	}

	if selected {
		return s.ListSelected.Width(width - 2).Render(line)
	}
	return s.ListItem.Width(width - 2).Render(line)
}

func (v *TasksView) renderForm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	inputWidth := clamp(contentWidth-6, 20, 40)

	title := "New Task"
	if v.editing != nil {
		title = "Edit Task"
	}

	input := func(field int, in textinput.Model) string {
		style := s.Input
		if v.formFocus == field {
			style = s.InputFocused
		}
		return style.Width(inputWidth).Render(in.View())
	}
	chooser := func(field int, value string) string {
		row := "◀ " + value + " ▶"
		if v.formFocus == field {
			return s.SegmentActive.Render(row)
		}
		return s.Segment.Render(row)
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(title),
		"",
		"Title:",
		input(fieldTitle, v.titleInput),
		"Description:",
		input(fieldDescription, v.descInput),
		"Due date:",
		input(fieldDueDate, v.dateInput),
		"Due time:",
		input(fieldDueTime, v.timeInput),
		"",
		"Priority:  "+chooser(fieldPriority, string(models.Priorities()[v.priorityIdx])),
		"Reminder:  "+chooser(fieldAlert, string(models.AlertOptions()[v.alertIdx])),
		"",
		s.Help.Render("tab field • ←/→ choose • ↵ save • esc cancel"),
	)
	if v.formErr != "" {
		form = lipgloss.JoinVertical(lipgloss.Left, form, "", s.FieldError.Render(v.formErr))
	}

	return styles.CenterView(s.Panel.Render(form), v.width, v.height)
}

func (v *TasksView) renderDeleteConfirm() string {
	s := v.styles
	title := ""
	if visible := v.visible(); v.cursor < len(visible) {
		title = visible[v.cursor].Title
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Delete Task"),
		"",
		fmt.Sprintf("Delete %q?", title),
		"",
		s.Help.Render("y confirm • n cancel"),
	)
	return styles.CenterView(s.Panel.Render(body), v.width, v.height)
}
