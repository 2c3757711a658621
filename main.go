package main

import "github.com/restmap-cli/restmap/cmd"

func main() {
	cmd.Execute()
}
