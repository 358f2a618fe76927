package app

import (
	"fmt"
	"io"
	"runtime"
)

// Version is the application version string. It is overridable at build
// time via -ldflags "-X github.com/Jozeph555/coincalc/internal/app.Version=...".
var Version = "dev"

// HasVersionFlag reports whether the argument list requests the version.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-v", "-version", "--version":
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "coincalc %s (%s, %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
