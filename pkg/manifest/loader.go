package manifest

import (
	"os"

	"github.com/arthur-debert/dotfiles/pkg/errors"
	"github.com/arthur-debert/dotfiles/pkg/logging"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ConfigsKey is the top-level key holding the entries
const ConfigsKey = "configs"

// Load reads and validates the manifest at path
func Load(fsys afero.Fs, path string) (*Manifest, error) {
	logger := logging.GetLogger("manifest").With().Str("path", path).Logger()

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrConfigNotFound, "configuration file not found: %s", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read configuration file %s", path)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, err
	}
	m.Path = path

	logger.Debug().
		Int("entries", m.Len()).
		Strs("names", m.Names()).
		Msg("Manifest loaded")

	return m, nil
}

// Parse decodes and validates a manifest document. An empty document, a
// missing configs key and an empty configs mapping all yield an empty
// manifest.
func Parse(data []byte) (*Manifest, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse YAML")
	}

	m := &Manifest{}

	if len(doc.Content) == 0 {
		return m, nil
	}

	root := doc.Content[0]
	if isNull(root) {
		return m, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, errors.Newf(errors.ErrConfigInvalid, "line %d: top level must be a mapping", root.Line)
	}

	configs := lookup(root, ConfigsKey)
	if configs == nil || isNull(configs) {
		return m, nil
	}
	if configs.Kind != yaml.MappingNode {
		return nil, errors.Newf(errors.ErrConfigInvalid, "line %d: %q must be a mapping of names to entries", configs.Line, ConfigsKey)
	}

	seen := make(map[string]bool, len(configs.Content)/2)
	for i := 0; i+1 < len(configs.Content); i += 2 {
		keyNode, valueNode := configs.Content[i], configs.Content[i+1]
		name := keyNode.Value

		if seen[name] {
			return nil, errors.Newf(errors.ErrConfigInvalid, "line %d: duplicate entry %q", keyNode.Line, name)
		}
		seen[name] = true

		entry, err := decodeEntry(name, valueNode)
		if err != nil {
			return nil, err
		}
		m.Entries = append(m.Entries, NamedEntry{Name: name, Entry: entry})
	}

	return m, nil
}

func decodeEntry(name string, node *yaml.Node) (Entry, error) {
	var entry Entry

	if !isNull(node) {
		if node.Kind != yaml.MappingNode {
			return Entry{}, errors.Newf(errors.ErrConfigInvalid, "line %d: entry %q must be a mapping", node.Line, name)
		}
		if err := node.Decode(&entry); err != nil {
			return Entry{}, errors.Wrapf(err, errors.ErrConfigInvalid, "entry %q", name)
		}
	}

	if err := Validate(name, &entry); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// Validate checks required fields and fills defaults in place
func Validate(name string, entry *Entry) error {
	if entry.Source == "" {
		return errors.Newf(errors.ErrConfigInvalid, "entry %q: missing required field \"source\"", name).
			WithDetail("entry", name)
	}
	if entry.Dest == "" {
		return errors.Newf(errors.ErrConfigInvalid, "entry %q: missing required field \"dest\"", name).
			WithDetail("entry", name)
	}

	if entry.CopyMode == "" {
		entry.CopyMode = DefaultCopyMode
	}
	if !entry.CopyMode.Valid() {
		return errors.Newf(errors.ErrConfigInvalid, "entry %q: unknown copy_mode %q (want %q or %q)",
			name, entry.CopyMode, CopyModeDirectory, CopyModeContents).
			WithDetail("entry", name)
	}

	return nil
}

func lookup(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}
