// Statplot - stat-log and grid-table plotting tool
//
// Statplot converts stat-tool logs (iostat, sar) and comma-delimited grid
// tables into gnuplot scripts, piping them into gnuplot by default.
package main

import (
	"os"

	"statplot/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
