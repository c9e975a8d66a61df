// Package version exposes the build metadata of the clonescan binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

var (
	// These variables are set during build time
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// Info contains build and toolchain information
type Info struct {
	Version   string `json:"version" yaml:"version"`
	SemVer    string `json:"semver" yaml:"semver"`
	BuildDate string `json:"buildDate" yaml:"buildDate"`
	GitCommit string `json:"gitCommit" yaml:"gitCommit"`

	GoVersion string `json:"goVersion" yaml:"goVersion"`
	Platform  string `json:"platform" yaml:"platform"`

	// Deps lists the modules compiled into the binary
	Deps []Module `json:"deps,omitempty" yaml:"deps,omitempty"`
}

// Module represents a Go module dependency
type Module struct {
	Path    string `json:"path" yaml:"path"`
	Version string `json:"version" yaml:"version"`
}

// Get returns the build information of the running binary
func Get() Info {
	info := Info{
		Version:   Version,
		SemVer:    semVer(Version),
		BuildDate: BuildDate,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}

	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		for _, dep := range buildInfo.Deps {
			info.Deps = append(info.Deps, Module{
				Path:    dep.Path,
				Version: dep.Version,
			})
		}
	}

	return info
}

// semVer strips pre-release and build suffixes: "v1.2.3-rc1" -> "v1.2.3".
func semVer(v string) string {
	v, _, _ = strings.Cut(v, "+")
	v, _, _ = strings.Cut(v, "-")
	return v
}

// Short returns the one line version string
func (i Info) Short() string {
	return fmt.Sprintf("clonescan %s (%s, %s)", i.Version, i.GitCommit, i.BuildDate)
}

// Full returns a formatted string with complete version information
func (i Info) Full() string {
	var b strings.Builder
	fmt.Fprintf(&b, "clonescan %s\n", i.Version)
	b.WriteString("========================================\n\n")

	b.WriteString("Version Information:\n")
	fmt.Fprintf(&b, "  Version:      %s\n", i.Version)
	fmt.Fprintf(&b, "  Semantic Ver: %s\n", i.SemVer)
	fmt.Fprintf(&b, "  Build Date:   %s\n", i.BuildDate)
	fmt.Fprintf(&b, "  Commit:       %s\n", i.GitCommit)
	b.WriteString("\n")

	b.WriteString("Go Build Information:\n")
	fmt.Fprintf(&b, "  Go Version:   %s\n", i.GoVersion)
	fmt.Fprintf(&b, "  Platform:     %s\n", i.Platform)

	if len(i.Deps) > 0 {
		b.WriteString("\nDependencies:\n")
		for _, dep := range i.Deps {
			fmt.Fprintf(&b, "  - %s@%s\n", dep.Path, dep.Version)
		}
	}

	return b.String()
}
