package output

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/teranos/dartpoet/errors"
	"github.com/teranos/dartpoet/logger"
)

// Format runs the formatter command over paths. command is the program and
// its leading arguments (config.FormatCommand); the paths are appended.
func Format(ctx context.Context, command []string, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	if len(command) == 0 {
		return errors.New("formatter command is empty")
	}
	log := logger.ComponentLogger("output")

	args := append(append([]string(nil), command[1:]...), paths...)
	cmd := exec.CommandContext(ctx, command[0], args...)

	start := time.Now()
	out, err := cmd.CombinedOutput()
	if err != nil {
		err = errors.Wrapf(err, "formatter %s failed", strings.Join(command, " "))
		if msg := strings.TrimSpace(string(out)); msg != "" {
			err = errors.WithDetail(err, msg)
		}
		if errors.Is(err, exec.ErrNotFound) {
			err = errors.WithHintf(err, "install %s or set format.enabled = false", command[0])
		}
		return err
	}
	log.Debugw("Formatted files",
		logger.FieldCommand, command[0],
		logger.FieldCount, len(paths),
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	return nil
}
