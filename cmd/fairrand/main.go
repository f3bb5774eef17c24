// Command fairrand draws filtered random values from the command line.
//
//	fairrand roll int --min 1 --max 21 -n 10
//	fairrand audit bool true true true true
//	fairrand patterns gaussian
//	fairrand run --config streams.yaml -n 20
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fairrand:", err)
		os.Exit(1)
	}
}
