package main

import "stompwire/cmd/cli/command"

func main() {
	command.Execute()
}
