// Package notify delivers desktop notifications.
package notify

import (
	"github.com/gen2brain/beeep"
)

// Desktop sends notifications through the operating system.
type Desktop struct {
	send     func(title, msg, icon string) error
	iconPath string
}

// New returns a desktop notifier. iconPath may be empty.
func New(iconPath string) *Desktop {
	return &Desktop{
		iconPath: iconPath,
		send: func(title, msg, icon string) error {
			return beeep.Notify(title, msg, icon)
		},
	}
}

// Notify shows a notification. An error usually means notifications were
// denied or no notification daemon is running.
func (d *Desktop) Notify(title, body string) error {
	if err := d.send(title, body, d.iconPath); err != nil {
		return errNotify.Wrap(err)
	}

	return nil
}

// Disabled drops every notification.
type Disabled struct{}

func (Disabled) Notify(string, string) error {
	return nil
}
