// Package main provides the entry point for the teammap CLI tool.
package main

import (
	"github.com/agentstation/teammap/cmd/teammap/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
