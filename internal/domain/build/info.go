// Package build carries version metadata stamped in at link time.
package build

// Info is filled from main's ldflags variables.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// Contributors lists everyone credited on the about screen.
func Contributors() []string {
	return []string{"bnema"}
}

// RepoURL points at the project home.
func RepoURL() string {
	return "https://github.com/bnema/wring"
}
