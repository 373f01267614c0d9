package ui

import (
	"github.com/rs/zerolog"

	tea "github.com/charmbracelet/bubbletea"

	"ischedule/internal/credentials"
	"ischedule/internal/db"
	"ischedule/internal/quotes"
	"ischedule/internal/schedule"
	"ischedule/internal/ui/views"
)

// Currently active view
type View int

const (
	ViewLogin View = iota
	ViewLists
	ViewTasks
	ViewStats
)

// Deps bundles everything the UI needs; lifecycle is owned by main.
type Deps struct {
	DB          *db.DB
	Scheduler   *schedule.Scheduler
	Credentials *credentials.Store
	Quotes      *quotes.Client
	Log         zerolog.Logger
}

type App struct {
	deps        Deps
	currentView View
	login       *views.LoginView
	listView    *views.ListsView
	taskView    *views.TasksView
	statsView   *views.StatsView
	width       int
	height      int
}

// NewApp creates the root application model
func NewApp(deps Deps) *App {
	return &App{
		deps:        deps,
		currentView: ViewLogin,
		login:       views.NewLoginView(deps.Credentials),
		listView:    views.NewListsView(deps.DB, deps.Log),
	}
}

func (a *App) Init() tea.Cmd {
	return a.login.Init()
}

func (a *App) resize() tea.Cmd {
	return func() tea.Msg {
		return tea.WindowSizeMsg{Width: a.width, Height: a.height}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// The lists view persists across navigation, keep it sized
		a.listView.Update(msg)

	case views.LoggedIn:
		a.currentView = ViewLists
		return a, tea.Batch(a.listView.Init(), a.resize())

	case views.SelectedList:
		a.currentView = ViewTasks
		a.taskView = views.NewTasksView(a.deps.DB, a.deps.Scheduler, a.deps.Log, msg.List)
		return a, tea.Batch(a.taskView.Init(), a.resize())

	case views.ShowStats:
		a.currentView = ViewStats
		a.statsView = views.NewStatsView(a.deps.DB, a.deps.Quotes, a.deps.Log)
		return a, tea.Batch(a.statsView.Init(), a.resize())

	case views.BackToLists:
		a.currentView = ViewLists
		return a, tea.Batch(a.listView.Init(), a.resize())
	}

	var cmd tea.Cmd
	switch a.currentView {
	case ViewLogin:
		_, cmd = a.login.Update(msg)
	case ViewLists:
		_, cmd = a.listView.Update(msg)
	case ViewTasks:
		_, cmd = a.taskView.Update(msg)
	case ViewStats:
		_, cmd = a.statsView.Update(msg)
	}

	return a, cmd
}

func (a *App) View() string {
	switch a.currentView {
	case ViewLogin:
		return a.login.View()
	case ViewTasks:
		if a.taskView != nil {
			return a.taskView.View()
		}
	case ViewStats:
		if a.statsView != nil {
			return a.statsView.View()
		}
	}
	return a.listView.View()
}
