package models

import "time"

// TaskList represents a named collection of tasks
type TaskList struct {
	ID        string
	Name      string
	Color     Color
	CreatedAt time.Time
}

// Task represents a single task owned by a TaskList
type Task struct {
	ID          string
	ListID      string
	Title       string
	Description string
	DueDate     time.Time // calendar date; time-of-day portion is ignored
	DueTime     time.Time // time-of-day; calendar portion is ignored
	Priority    Priority
	Status      Status
	Alert       AlertOption
	CreatedAt   time.Time
}

// DueInstant overlays the task's time-of-day onto its due date,
// with seconds truncated to zero.
func (t Task) DueInstant() time.Time {
	return time.Date(
		t.DueDate.Year(), t.DueDate.Month(), t.DueDate.Day(),
		t.DueTime.Hour(), t.DueTime.Minute(), 0, 0,
		t.DueDate.Location(),
	)
}

// Priority is a task's urgency level
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Priorities lists all priorities in ascending rank order.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// Rank returns the sort weight of a priority. Unrecognized values rank
// below Low so they sink to the bottom of priority-sorted lists.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// ParsePriority maps a stored string to a Priority, defaulting to Medium.
func ParsePriority(s string) Priority {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(s)
	}
	return PriorityMedium
}

// Status is a task's completion state
type Status string

const (
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// ParseStatus maps a stored string to a Status, defaulting to In Progress.
func ParseStatus(s string) Status {
	if Status(s) == StatusCompleted {
		return StatusCompleted
	}
	return StatusInProgress
}

// Toggled returns the opposite status.
func (s Status) Toggled() Status {
	if s == StatusCompleted {
		return StatusInProgress
	}
	return StatusCompleted
}

// Color is a list's display color, one of a fixed eight-name palette
type Color string

const (
	ColorRed    Color = "red"
	ColorOrange Color = "orange"
	ColorYellow Color = "yellow"
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
	ColorPurple Color = "purple"
	ColorGray   Color = "gray"
	ColorPink   Color = "pink"
)

// Palette lists the selectable list colors.
func Palette() []Color {
	return []Color{
		ColorRed, ColorOrange, ColorYellow, ColorGreen,
		ColorBlue, ColorPurple, ColorGray, ColorPink,
	}
}

// ParseColor maps a stored string to a Color, defaulting to gray.
func ParseColor(s string) Color {
	for _, c := range Palette() {
		if Color(s) == c {
			return c
		}
	}
	return ColorGray
}

// AlertOption is the lead time before a task's due instant at which a
// reminder should fire
type AlertOption string

const (
	AlertNone      AlertOption = "None"
	Alert5Seconds  AlertOption = "5 Seconds before"
	Alert5Minutes  AlertOption = "5 minutes before"
	Alert10Minutes AlertOption = "10 minutes before"
	Alert15Minutes AlertOption = "15 minutes before"
	Alert30Minutes AlertOption = "30 minutes before"
	Alert1Hour     AlertOption = "1 hour before"
	Alert2Hours    AlertOption = "2 hours before"
)

// alertLeads is the single source of truth for lead durations.
var alertLeads = map[AlertOption]time.Duration{
	AlertNone:      0,
	Alert5Seconds:  5 * time.Second,
	Alert5Minutes:  5 * time.Minute,
	Alert10Minutes: 10 * time.Minute,
	Alert15Minutes: 15 * time.Minute,
	Alert30Minutes: 30 * time.Minute,
	Alert1Hour:     time.Hour,
	Alert2Hours:    2 * time.Hour,
}

// AlertOptions lists all options in menu order.
func AlertOptions() []AlertOption {
	return []AlertOption{
		AlertNone, Alert5Seconds, Alert5Minutes, Alert10Minutes,
		Alert15Minutes, Alert30Minutes, Alert1Hour, Alert2Hours,
	}
}

// Lead returns the reminder lead time. AlertNone and unrecognized
// options return 0, which means no reminder.
func (a AlertOption) Lead() time.Duration {
	return alertLeads[a]
}

// ParseAlertOption maps a stored string to an AlertOption, defaulting to None.
func ParseAlertOption(s string) AlertOption {
	if _, ok := alertLeads[AlertOption(s)]; ok {
		return AlertOption(s)
	}
	return AlertNone
}
