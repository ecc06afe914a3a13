// Command lunarcal converts dates between the solar and lunar calendars from
// the command line.
//
// Usage:
//
//	lunarcal to-lunar 2024-02-10
//	lunarcal to-solar 2023 2 1 --leap
//	lunarcal year 2025 --lang en
//	lunarcal verify --from 1900 --to 2100
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
