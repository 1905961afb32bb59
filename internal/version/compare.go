package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CheckConfigCompatibility checks whether a configuration file written for
// configVersion can be read by a binary at binaryVersion.
//
// Compatibility Rules:
//   - If either version is "main" (development build) or the config carries no
//     version, the check is skipped
//   - Major versions must match exactly
//   - The config minor version must not be newer than the binary minor version
//   - Patch versions are ignored
//
// Examples:
//   - Binary 0.4.0, Config 0.4.2 -> OK (patch differs)
//   - Binary 0.4.0, Config 0.3.0 -> OK (older config)
//   - Binary 0.4.0, Config 0.5.0 -> ERROR (config is newer)
//   - Binary 1.0.0, Config 0.4.0 -> ERROR (major differs)
func CheckConfigCompatibility(binaryVersion, configVersion string) error {
	binaryVersion = strings.TrimPrefix(binaryVersion, "v")
	configVersion = strings.TrimPrefix(configVersion, "v")

	if configVersion == "" || binaryVersion == "main" || configVersion == "main" {
		return nil
	}

	binarySemver, err := semver.NewVersion(binaryVersion)
	if err != nil {
		return fmt.Errorf("invalid binary version '%s': %w", binaryVersion, err)
	}

	configSemver, err := semver.NewVersion(configVersion)
	if err != nil {
		return fmt.Errorf("invalid config version '%s': %w", configVersion, err)
	}

	if binarySemver.Major() != configSemver.Major() {
		return fmt.Errorf("major version mismatch: terminal is %d.x.x but config requires %d.x.x",
			binarySemver.Major(), configSemver.Major())
	}

	if configSemver.Minor() > binarySemver.Minor() {
		return fmt.Errorf("config version %s is newer than terminal version %s",
			configSemver.String(), binarySemver.String())
	}

	return nil
}
