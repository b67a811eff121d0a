// Command signupcheck validates sign-up form records in bulk.
//
// Usage:
//
//	signupcheck [-format json|yaml|form] [file]
//
// Records are read from file, or stdin when file is omitted or "-". JSON and
// YAML input hold one record or a list of records; form input holds one
// url-encoded record per line. One JSON result line is written to stdout per
// record. Logs go to stderr.
//
// Environment:
//
//	SIGNUP_ENV        development (default) or production
//	SIGNUP_LOG_LEVEL  debug, info, warn or error; overrides the environment default
//	SIGNUP_TIMEZONE   IANA zone whose calendar date counts as today (default Local)
//
// Exit status is 0 when every record is valid, 1 when at least one record is
// invalid and 2 on usage, configuration or decoding errors.
package main

import (
	"os"
	_ "time/tzdata"

	"github.com/dmitrymomot/signup/pkg/clock"
)

func main() {
	a := &app{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		clock:  clock.System(),
	}
	os.Exit(a.run(os.Args[1:]))
}
