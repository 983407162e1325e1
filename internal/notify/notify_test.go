package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifyWrapsDenial(t *testing.T) {
	denied := errors.New("permission denied")

	d := New("/tmp/icon.png")

	var gotIcon string

	d.send = func(_, _, icon string) error {
		gotIcon = icon
		return denied
	}

	err := d.Notify("Pomodoro Complete! 🎉", "Time for a break!")

	assert.ErrorIs(t, err, denied)
	assert.ErrorIs(t, err, errNotify)
	assert.Equal(t, "/tmp/icon.png", gotIcon)
}

func TestDisabledNotifier(t *testing.T) {
	assert.NoError(t, Disabled{}.Notify("a", "b"))
}
