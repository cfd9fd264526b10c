// Package main is the entry point for the allurelint CLI.
package main

import "allurelint.dev/pkg/allurelint/cmd"

func main() {
	cmd.Execute()
}
