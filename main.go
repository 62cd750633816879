// Package main is the entry point for the splitstats CLI tool, which computes
// batting splits (AVG, OBP, SLG, OPS by handedness matchup) from plate-appearance data.
package main

import "github.com/pable/splitstats/cmd"

func main() {
	cmd.Execute()
}
