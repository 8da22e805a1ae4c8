package host

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/levicook/korgs-program-library/internal/messages"
)

// EnvToolsHome is the environment variable naming the install root for
// every tool kpl manages.
const EnvToolsHome = "KORGS_TOOLS_HOME"

// ResolveToolsHome returns the install root: $KORGS_TOOLS_HOME when set,
// otherwise ~/.korgs/tools.
func ResolveToolsHome() (string, error) {
	if v := strings.TrimSpace(os.Getenv(EnvToolsHome)); v != "" {
		return v, nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf(messages.HostHomeDirErrFmt, err)
	}
	return filepath.Join(home, ".korgs", "tools"), nil
}
