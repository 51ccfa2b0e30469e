package installer

// Status is the outcome of installing one entry
type Status int

const (
	// StatusInstalled means the entry was copied into place
	StatusInstalled Status = iota + 1

	// StatusSourceMissing means the entry's source does not exist; nothing
	// was backed up or copied
	StatusSourceMissing
)

func (s Status) String() string {
	switch s {
	case StatusInstalled:
		return "installed"
	case StatusSourceMissing:
		return "source missing"
	default:
		return "unknown"
	}
}

// Result describes what happened to one entry
type Result struct {
	Name   string
	Status Status

	// Source and Dest are the resolved absolute paths
	Source string
	Dest   string

	// Notes holds the entry's post-install notes. Only set, and never nil,
	// when Status is StatusInstalled.
	Notes []string
}

// Installed reports whether the entry was copied into place
func (r Result) Installed() bool {
	return r.Status == StatusInstalled
}
