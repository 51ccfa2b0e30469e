package manifest

// CopyMode selects how an entry's source is placed at its destination
type CopyMode string

const (
	// CopyModeDirectory replaces the destination wholesale with the source tree
	CopyModeDirectory CopyMode = "directory"

	// CopyModeContents merges the source's direct children into the
	// destination, leaving unrelated destination content alone
	CopyModeContents CopyMode = "contents"
)

// DefaultCopyMode is used when an entry does not declare copy_mode
const DefaultCopyMode = CopyModeDirectory

// Valid reports whether m is a known copy mode
func (m CopyMode) Valid() bool {
	return m == CopyModeDirectory || m == CopyModeContents
}

// Entry is one named installation unit
type Entry struct {
	// Source is relative to the directory holding the manifest
	Source string `yaml:"source"`

	// Dest may contain $HOME, $CONFIG and $LOCAL
	Dest string `yaml:"dest"`

	CopyMode     CopyMode `yaml:"copy_mode"`
	Dependencies []string `yaml:"dependencies"`
	Notes        []string `yaml:"notes"`

	// BackupFiles names the files under Dest that are backed up before a
	// contents-mode copy. Ignored in directory mode.
	BackupFiles []string `yaml:"backup_files"`
}

// NamedEntry pairs an entry with its name in the manifest
type NamedEntry struct {
	Name  string
	Entry Entry
}

// Manifest is the ordered set of entries to install
type Manifest struct {
	// Path is the file the manifest was loaded from, empty when parsed from memory
	Path    string
	Entries []NamedEntry
}

// Len returns the number of entries
func (m *Manifest) Len() int {
	if m == nil {
		return 0
	}
	return len(m.Entries)
}

// Names returns entry names in manifest order
func (m *Manifest) Names() []string {
	if m == nil {
		return nil
	}
	names := make([]string, 0, len(m.Entries))
	for _, e := range m.Entries {
		names = append(names, e.Name)
	}
	return names
}

// Get returns the entry with the given name
func (m *Manifest) Get(name string) (Entry, bool) {
	if m == nil {
		return Entry{}, false
	}
	for _, e := range m.Entries {
		if e.Name == name {
			return e.Entry, true
		}
	}
	return Entry{}, false
}
