package commands

import "fmt"

const help = `sitesnap - construction site image archive service

Usage:
  sitesnap run <config-path>   start the server with the given config file
  sitesnap version             print version
  sitesnap help                print this message
`

func HandleHelp(_ []string) {
	fmt.Print(help) //nolint
}
