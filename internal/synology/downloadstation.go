package synology

import (
	"context"
	"fmt"
	"net/url"

	"github.com/charmbracelet/log"
)

// DownloadStation exposes the SYNO.DownloadStation API family of a client
// and caches the most recent task listing. The zero value is not usable;
// obtain one from Client.DownloadStation.
type DownloadStation struct {
	client *Client
	tasks  []Task
}

// Update fetches the current task list with detail and file information and
// replaces the cached snapshot. The previous snapshot is kept on failure.
func (d *DownloadStation) Update(ctx context.Context) error {
	if !d.client.LoggedIn() {
		return fmt.Errorf("failed to list tasks: not logged in")
	}

	query := url.Values{}
	query.Set("api", "SYNO.DownloadStation.Task")
	query.Set("method", "list")
	query.Set("version", "1")
	query.Set("_sid", d.client.sid)
	query.Set("additional", "detail,file")

	var data struct {
		Tasks []Task `json:"tasks"`
		Total int    `json:"total"`
	}
	if err := d.client.get(ctx, "DownloadStation/task.cgi", query, &data); err != nil {
		log.Error("Failed to list download tasks", "error", err, "host", d.client.Addr())
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	log.Debug("Refreshed download tasks", "total", data.Total, "host", d.client.Addr())
	d.tasks = data.Tasks
	return nil
}

// Tasks returns a copy of the cached snapshot in the order the station
// reported it. It is empty until the first successful Update.
func (d *DownloadStation) Tasks() []Task {
	out := make([]Task, len(d.tasks))
	copy(out, d.tasks)
	return out
}
