package main

import (
	"fmt"
	"io"
)

var buildTime, buildVersion string

func showVersion(out io.Writer) {
	if buildTime != "" && buildVersion != "" {
		fmt.Fprintf(out, "%s (built: %s)\n", buildVersion, buildTime)
	} else {
		fmt.Fprintln(out, "lcdctl: dev")
	}
}
