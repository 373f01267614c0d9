package schedule

import "github.com/gen2brain/beeep"

// DesktopNotifier submits notifications to the OS notification service.
type DesktopNotifier struct{}

func (DesktopNotifier) Notify(title, body string) error {
	return beeep.Notify(title, body, "")
}
