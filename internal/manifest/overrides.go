package manifest

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/levicook/korgs-program-library/internal/messages"
)

// DefaultOverridesFile is the version override file looked up in the
// working directory when no explicit path is given.
const DefaultOverridesFile = "korgs-tools.toml"

// Overrides is the externally configurable portion of the manifest: a
// table of tool name to pinned version.
//
//	[versions]
//	rust = "1.92.0"
type Overrides struct {
	Versions map[string]string `toml:"versions"`
}

// LoadOverrides reads the version override file at path. A missing file is
// not an error; it yields empty overrides so the built-in pins apply.
func LoadOverrides(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Overrides{}, nil
		}
		return Overrides{}, fmt.Errorf(messages.ManifestReadOverridesFmt, path, err)
	}
	var ov Overrides
	if err := toml.Unmarshal(data, &ov); err != nil {
		return Overrides{}, fmt.Errorf(messages.ManifestParseOverridesFmt, ErrManifest, path, err)
	}
	return ov, nil
}
