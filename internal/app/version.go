package app

import "fmt"

// Set with -ldflags "-X github.com/heartmarshall/vocab-builder/internal/app.Version=1.2.0".
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion is printed by `vocab version` and reported on /health.
func BuildVersion() string {
	if Commit == "" {
		return "vocab " + Version
	}
	if BuildTime == "" {
		return fmt.Sprintf("vocab %s (%s)", Version, Commit)
	}
	return fmt.Sprintf("vocab %s (%s, %s)", Version, Commit, BuildTime)
}
