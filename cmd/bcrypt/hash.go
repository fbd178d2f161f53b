package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/eksblowfish/bcrypt"
)

type hashCmd struct {
	Cost int `help:"The bcrypt cost factor." default:"12"`
}

func (cmd *hashCmd) Run(_ *kong.Context) error {
	pwd, err := askPassphrase("Enter password: ")
	if err != nil {
		return err
	}

	confirm, err := askPassphrase("Confirm password: ")
	if err != nil {
		return err
	}

	if string(pwd) != string(confirm) {
		return fmt.Errorf("passwords did not match")
	}

	hash, err := bcrypt.HashPasswordCost(pwd, cmd.Cost)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(os.Stdout, hash)

	return err
}
