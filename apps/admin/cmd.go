package main

import (
	"errors"
	"flag"
	"fmt"
	"syscall"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct{}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  hashpassword -username USERNAME - generate a GRADIFY_AUTHUSERS entry; the password is prompted next")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	hashPasswordCmd := flag.NewFlagSet("hashpassword", flag.ExitOnError)
	hashPasswordUname := hashPasswordCmd.String("username", "", "The username. The password will be prompted next.")

	switch args[1] {
	case "hashpassword":
		if err := hashPasswordCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *hashPasswordUname == "" {
			hashPasswordCmd.Usage()
			return errHelp
		}
		fmt.Print("Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Println()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			hashPasswordCmd.Usage()
			return errHelp
		}
		return cli.hashPassword(*hashPasswordUname, pwd)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) hashPassword(username string, pwd []byte) error {
	hash, err := bcrypt.GenerateFromPassword(pwd, bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	fmt.Printf("%s:%s\n", username, hash)
	return nil
}
