package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/eksblowfish/bcrypt"
	"golang.org/x/term"
)

type checkCmd struct {
	Hash string `arg:"" help:"The bcrypt hash to check the password against."`
}

func (cmd *checkCmd) Run(_ *kong.Context) error {
	pwd, err := askPassphrase("Enter password: ")
	if err != nil {
		return err
	}

	ok, err := bcrypt.CheckPassword(pwd, cmd.Hash)
	if err != nil {
		return err
	}

	if !ok {
		_, _ = fmt.Fprintln(os.Stderr, "password does not match")
		os.Exit(1)
	}

	_, err = fmt.Fprintln(os.Stdout, "password matches")

	return err
}

func askPassphrase(prompt string) ([]byte, error) {
	defer func() { _, _ = fmt.Fprintln(os.Stderr) }()

	_, _ = fmt.Fprint(os.Stderr, prompt)

	return term.ReadPassword(int(os.Stdin.Fd()))
}
