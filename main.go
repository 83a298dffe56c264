// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for bdx.
//
// Usage:
//
//	go run . [flags] [VALUE]
//	./bdx convert --from hex FF
//
// Without a subcommand the interactive converter starts. See --help for
// options.
package main

import (
	"os"

	"github.com/rasmusac/bdx/ui/cli"
)

func main() {
	// cobra has already printed the error
	os.Exit(cli.ExitCode(cli.Execute()))
}
