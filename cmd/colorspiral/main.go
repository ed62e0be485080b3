// Command colorspiral prints or renders colours sampled along a
// logarithmic spiral through HSV space.
//
//	colorspiral -k 8 -a 4 -jitter 0
//	colorspiral -keys setosa,versicolor,virginica -format json
//	colorspiral -k 625 -seed 7 -png square.png -layout grid
//	colorspiral -k 16 -a 4 -jitter 0 -png spiral.png -layout disc
package main

import (
	"os"

	"golang.org/x/term"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, term.IsTerminal(int(os.Stdout.Fd()))))
}
