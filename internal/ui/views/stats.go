package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"ischedule/internal/db"
	"ischedule/internal/models"
	"ischedule/internal/quotes"
	"ischedule/internal/stats"
	"ischedule/internal/ui/keys"
	"ischedule/internal/ui/styles"
)

type statsLoadedMsg struct {
	lists []models.TaskList
	tasks []models.Task
	err   error
}

type quoteLoadedMsg struct {
	quote quotes.Quote
	err   error
}

// StatsView shows completion figures across all lists, with a
// per-list breakdown for the selected status.
type StatsView struct {
	db     *db.DB
	quotes *quotes.Client
	log    zerolog.Logger
	styles *styles.Styles
	keys   keys.KeyMap

	width  int
	height int

	lists   []models.TaskList
	tasks   []models.Task
	status  models.Status
	quote   *quotes.Quote
	errText string
}

func NewStatsView(database *db.DB, quoteClient *quotes.Client, log zerolog.Logger) *StatsView {
	return &StatsView{
		db:     database,
		quotes: quoteClient,
		log:    log.With().Str("view", "stats").Logger(),
		styles: styles.NewStyles(),
		keys:   keys.DefaultKeyMap(),
		status: models.StatusInProgress,
	}
}

func (v *StatsView) Init() tea.Cmd {
	return tea.Batch(v.load, v.fetchQuote)
}

func (v *StatsView) load() tea.Msg {
	lists, err := v.db.ListLists()
	if err != nil {
		return statsLoadedMsg{err: err}
	}
	tasks, err := v.db.AllTasks()
	if err != nil {
		return statsLoadedMsg{err: err}
	}
	return statsLoadedMsg{lists: lists, tasks: tasks}
}

func (v *StatsView) fetchQuote() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q, err := v.quotes.Random(ctx)
	return quoteLoadedMsg{quote: q, err: err}
}

func (v *StatsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case statsLoadedMsg:
		if msg.err != nil {
			v.log.Error().Err(msg.err).Msg("loading statistics")
			v.errText = "Could not load statistics"
			return v, nil
		}
		v.errText = ""
		v.lists = msg.lists
		v.tasks = msg.tasks
		return v, nil

	case quoteLoadedMsg:
		// The quote is decoration; failures only get logged.
		if msg.err != nil {
			v.log.Warn().Err(msg.err).Msg("fetching quote")
			return v, nil
		}
		q := msg.quote
		v.quote = &q
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Quit):
			return v, tea.Quit

		case key.Matches(msg, v.keys.Back):
			return v, func() tea.Msg { return BackToLists{} }

		case key.Matches(msg, v.keys.Tab), key.Matches(msg, v.keys.Status):
			v.status = v.status.Toggled()
			return v, nil
		}
	}

	return v, nil
}

func (v *StatsView) View() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	counts := stats.StatusCounts(v.tasks)
	percent := stats.CompletionPercent(v.tasks)

	var b strings.Builder
	b.WriteString(s.Title.Render("Statistics"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Tasks: %d total, %d in progress, %d completed\n",
		counts.Total(), counts.InProgress, counts.Completed))
	b.WriteString(fmt.Sprintf("Completed: %.1f%%\n\n", percent))

	segment := func(status models.Status) string {
		label := string(status)
		if v.status == status {
			return s.SegmentActive.Render(label)
		}
		return s.Segment.Render(label)
	}
	b.WriteString(segment(models.StatusInProgress) + " " + segment(models.StatusCompleted))
	b.WriteString("\n\n")

	shares := stats.Breakdown(v.lists, v.tasks, v.status)
	if len(shares) == 0 {
		b.WriteString(s.TitleMuted.Render("Nothing to show for this status."))
		b.WriteString("\n")
	}
	for _, share := range shares {
		dot := lipgloss.NewStyle().
			Foreground(styles.ListColor(share.List.Color)).
			Render("●")
		b.WriteString(fmt.Sprintf("%s %s: %d (%.1f%%)\n",
			dot, share.List.Name, share.Count, share.Percent))
	}

	if v.quote != nil {
		quote := fmt.Sprintf("%q - %s", v.quote.Text, v.quote.Author)
		b.WriteString("\n")
		b.WriteString(s.TitleMuted.Width(contentWidth - 4).Render(quote))
		b.WriteString("\n")
	}

	if v.errText != "" {
		b.WriteString("\n" + s.FieldError.Render(v.errText))
	}

	b.WriteString("\n")
	b.WriteString(s.Help.Render("tab status • esc back • q quit"))

	return styles.CenterView(b.String(), v.width, v.height)
}
