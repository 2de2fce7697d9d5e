package main

import (
	"log"
	"os"
)

func main() {
	cli := new(commandLine)
	if err := cli.run(os.Args); err != nil {
		if err == errHelp {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}
