// Package compileinfo reports which commit and toolchain produced the running
// binary, so a FASTA file can be traced back to the converter that made it.
package compileinfo

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"
)

type CompileInfo struct {
	Package    string
	Version    string
	GoVersion  string
	Commit     string
	CommitTime string
	Modified   bool
}

func (c CompileInfo) String() string {
	if c.Package == "" {
		return "No build information is embedded in this binary."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s", c.Package)
	if c.Version != "" && c.Version != "(devel)" {
		fmt.Fprintf(&sb, " %s", c.Version)
	}
	fmt.Fprintf(&sb, " built with %s", c.GoVersion)
	if c.Commit != "" {
		fmt.Fprintf(&sb, " at commit %s (%s)", c.Commit, c.CommitTime)
	}
	if c.Modified {
		sb.WriteString(" with uncommitted changes")
	}
	sb.WriteString(".")

	return sb.String()
}

// FromBuildInfo extracts the fields of interest from runtime build info.
func FromBuildInfo(z *debug.BuildInfo) CompileInfo {
	out := CompileInfo{}
	if z == nil {
		return out
	}

	out.GoVersion = z.GoVersion
	out.Package = z.Path
	out.Version = z.Main.Version
	for _, s := range z.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Commit = s.Value
		case "vcs.time":
			out.CommitTime = s.Value
		case "vcs.modified":
			out.Modified = s.Value == "true"
		}
	}

	return out
}

func Get() CompileInfo {
	z, ok := debug.ReadBuildInfo()
	if !ok {
		return CompileInfo{}
	}

	return FromBuildInfo(z)
}

func PrintToStdErr() {
	fmt.Fprintln(os.Stderr, Get())
}
