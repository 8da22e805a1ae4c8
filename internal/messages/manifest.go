package messages

// Manifest loading and validation errors. Formats beginning with %w wrap
// manifest.ErrManifest so callers can branch with errors.Is.
const (
	ManifestInvalid = "invalid manifest"

	ManifestDuplicateToolFmt     = "%w: duplicate tool name %q"
	ManifestUnknownDependencyFmt = "%w: tool %q depends on unknown tool %q"
	ManifestCycleFmt             = "%w: dependency cycle through %q"
	ManifestUnknownOverrideFmt   = "%w: version override for unknown tool %q"
	ManifestToolVersionFmt       = "%w: tool %q: %v"
	ManifestParseOverridesFmt    = "%w: parse version overrides %s: %v"
	ManifestReadOverridesFmt     = "read version overrides %s: %v"

	VersionEmpty      = "version is empty"
	VersionInvalidFmt = "invalid version %q: %v"
)
