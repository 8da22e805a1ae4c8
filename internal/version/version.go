// Package version validates and normalizes pinned version strings.
//
// The provisioning engine compares versions with exact string equality;
// ranges are never resolved. Validation here only guarantees that a pin is
// well-formed before any host mutation happens.
package version

import (
	"errors"
	"fmt"
	"strings"

	goversion "github.com/hashicorp/go-version"

	"github.com/levicook/korgs-program-library/internal/messages"
)

// Normalize strips an optional leading "v" and surrounding whitespace and
// validates that the result is a well-formed semantic version.
func Normalize(raw string) (string, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(raw), "v")
	if trimmed == "" {
		return "", errors.New(messages.VersionEmpty)
	}
	if _, err := goversion.NewSemver(trimmed); err != nil {
		return "", fmt.Errorf(messages.VersionInvalidFmt, raw, err)
	}
	return trimmed, nil
}
