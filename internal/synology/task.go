package synology

// Status is a Download Station task state as reported by the DSM API.
type Status string

const (
	StatusWaiting            Status = "waiting"
	StatusDownloading        Status = "downloading"
	StatusPaused             Status = "paused"
	StatusFinishing          Status = "finishing"
	StatusFinished           Status = "finished"
	StatusHashChecking       Status = "hash_checking"
	StatusSeeding            Status = "seeding"
	StatusFilehostingWaiting Status = "filehosting_waiting"
	StatusExtracting         Status = "extracting"
	StatusError              Status = "error"
)

// String returns the string representation of Status.
func (s Status) String() string {
	return string(s)
}

// IsActive returns true while the station is still moving data for the task.
func (s Status) IsActive() bool {
	return s == StatusWaiting || s == StatusDownloading || s == StatusFinishing ||
		s == StatusHashChecking || s == StatusFilehostingWaiting || s == StatusExtracting
}

// IsFinished returns true once the task reached a terminal state.
func (s Status) IsFinished() bool {
	return s == StatusFinished || s == StatusError
}

// Task is a single Download Station job. It is produced by the NAS and
// read-only here; each refresh replaces the previous snapshot wholesale.
type Task struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Status   Status `json:"status"`
	Size     int64  `json:"size"`
	Type     string `json:"type"`
	Username string `json:"username"`

	Additional struct {
		Detail struct {
			CompletedTime int64 `json:"completed_time"`
			StartedTime   int64 `json:"started_time"`
		} `json:"detail"`
		File []TaskFile `json:"file"`
	} `json:"additional"`
}

// TaskFile is one file inside a (multi-file) task.
type TaskFile struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// ElapsedSeconds returns completed_time - started_time. The station reports
// zero timestamps for tasks that never started, so the result can be zero or
// negative; callers decide how to present that.
func (t Task) ElapsedSeconds() int64 {
	return t.Additional.Detail.CompletedTime - t.Additional.Detail.StartedTime
}
