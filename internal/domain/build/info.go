// Package build describes the binary being run.
package build

import "runtime"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
}

// WithGoVersion fills GoVersion from the running toolchain when unset.
func (i Info) WithGoVersion() Info {
	if i.GoVersion == "" {
		i.GoVersion = runtime.Version()
	}
	return i
}

// RepoURL returns the project repository URL.
func RepoURL() string {
	return "https://github.com/bnema/flashmark"
}
