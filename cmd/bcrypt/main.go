// Command bcrypt hashes and verifies passwords using the bcrypt algorithm.
package main

import (
	"github.com/alecthomas/kong"
)

type cli struct {
	Hash  hashCmd  `cmd:"" help:"Hash a password read from the terminal."`
	Check checkCmd `cmd:"" help:"Check a password against a bcrypt hash."`
}

func main() {
	var cli cli

	ctx := kong.Parse(&cli)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
