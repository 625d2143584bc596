// Package version carries the build metadata stamped into the binary.
package version

// Overridden at build time via -ldflags; defaults cover local runs.
var (
	Version = "dev"
	Commit  = "none"
	Date    = ""
	Dirty   = "false"
)

// String renders the version the way the API and logs report it.
func String() string {
	s := Version
	if Commit != "none" && Commit != "" {
		s += "+" + Commit
	}
	if Dirty == "true" {
		s += ".dirty"
	}
	return s
}
