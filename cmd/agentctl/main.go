// Package main provides the agentctl CLI entrypoint.
package main

import (
	"os"

	"supportagent/cmd/agentctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
