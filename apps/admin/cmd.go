package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

var (
	errHelp            = errors.New("help provided")
	errInvalidFixtures = errors.New("invalid fixtures")
)

type commandLine struct {
	validate   *validator.Validate
	translator ut.Translator
	out        io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  checkfixtures [-students PATH] [-attendance PATH] - validate seed fixtures")
	fmt.Fprintln(cli.out, "  roster [-students PATH] [-attendance PATH] [-search QUERY] [-ordering FIELDS] - print the class roster")
}

func (cli *commandLine) newFlagSet(name string) (*flag.FlagSet, *string, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	students := fs.String("students", "", "Path to a students JSON fixture. Defaults to the embedded one.")
	attendance := fs.String("attendance", "", "Path to an attendance JSON fixture. Defaults to the embedded one.")
	return fs, students, attendance
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "checkfixtures":
		cmd, students, attendance := cli.newFlagSet("checkfixtures")
		if err := cmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		return cli.checkFixtures(*students, *attendance)
	case "roster":
		cmd, students, attendance := cli.newFlagSet("roster")
		search := cmd.String("search", "", "Only list students whose name, code or email contains QUERY.")
		ordering := cmd.String("ordering", "", "Comma separated fields to sort by, prefixed with - for descending order.")
		if err := cmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		return cli.roster(*students, *attendance, *search, *ordering)
	default:
		cli.printUsage()
		return errHelp
	}
}
