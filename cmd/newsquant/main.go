package main

import (
	"os"

	"github.com/wonny/newsquant/cmd/newsquant/commands"
)

// main is the entry point for the newsquant CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/newsquant [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
