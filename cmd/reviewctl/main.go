// reviewctl runs the review sentiment engine from the command line.
//
// Usage:
//
//	reviewctl analyze "The camera is stunning" [-o json|yaml|text]
//	reviewctl compare "iPhone review" "Galaxy review"
//	reviewctl normalize "Some raw text!!!"
//	reviewctl version
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
