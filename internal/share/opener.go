package share

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/newsdeck/newsdeck/internal/debuglog"
)

// Opener launches URLs in the platform's default browser.
type Opener struct {
	command string
}

// NewOpener builds an Opener. An empty command selects the platform
// default (open / xdg-open / start).
func NewOpener(command string) *Opener {
	if command == "" {
		command = defaultOpenerCommand()
	}
	return &Opener{command: command}
}

func defaultOpenerCommand() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "linux":
		return "xdg-open"
	case "windows":
		return "start"
	default:
		return "open"
	}
}

// Command reports the opener binary in use.
func (o *Opener) Command() string {
	return o.command
}

// Open starts the browser detached and does not wait for it.
func (o *Opener) Open(rawURL string) error {
	cmd := exec.Command(o.command, rawURL)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", o.command, err)
	}

	go func() {
		_ = cmd.Wait()
	}()

	debuglog.Debugf("opened %s via %s", rawURL, o.command)
	return nil
}
