// Command roundparse converts a CESIM round workbook into the JSON bundle
// accepted by POST /rounds.
package main

import "os"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
