// Command srm is the SRM front end: load a BOF file and either list its
// disassembly (-p) or interpret it to completion.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/srmvm/srm/pkg/bof"
	"github.com/srmvm/srm/pkg/vm"
)

func main() {
	log.SetFlags(0)

	app := &cli.App{
		Name:      "srm",
		Usage:     "interpret or list a Stack-oriented Register Machine binary object file",
		UsageText: "srm [-p] <file.bof>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "print",
				Aliases: []string{"p"},
				Usage:   "load and print the listing instead of running",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		if ec, ok := err.(cli.ExitCoder); ok {
			log.Print(err)
			os.Exit(ec.ExitCode())
		}
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: srm [-p] <file.bof>", 1)
	}
	path := c.Args().Get(0)

	r, err := bof.Open(path)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer r.Close()

	machine := vm.New()
	if err := vm.Load(machine, r); err != nil {
		return cli.Exit(err, 1)
	}

	if c.Bool("print") {
		machine.PrintProgram()
		return nil
	}

	exitCode, err := vm.Run(machine)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.Exit("", 1)
	}
	return cli.Exit("", exitCode)
}
