package report

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/ag0n1k/tg-fsyn/internal/synology"
)

// Station is the slice of a Download Station session a monitoring pass
// needs. *synology.Client satisfies it.
type Station interface {
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	RefreshTasks(ctx context.Context) error
	Tasks() []synology.Task
}

// Collect runs one scoped session against st and returns the task snapshot.
// The session is closed on every path; a logout failure is logged but never
// returned.
func Collect(ctx context.Context, st Station) ([]synology.Task, error) {
	if err := st.Login(ctx); err != nil {
		return nil, err
	}
	defer func() {
		if err := st.Logout(ctx); err != nil {
			log.Warn("Failed to log out", "error", err)
		}
	}()

	if err := st.RefreshTasks(ctx); err != nil {
		return nil, err
	}
	return st.Tasks(), nil
}

// Run performs one monitoring pass: collect a snapshot from st and write the
// text report to w.
func Run(ctx context.Context, st Station, w io.Writer) error {
	tasks, err := Collect(ctx, st)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, Render(tasks)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
