package version

// Version is the current version of the terminal.
// This value is set at build time using ldflags:
// -ldflags "-X github.com/rxtech-lab/argo-terminal/internal/version.Version=1.2.3"
// The value "main" indicates a development build.
var Version = "v0.4.0"

// GetVersion returns the current version of the terminal.
func GetVersion() string {
	return Version
}
