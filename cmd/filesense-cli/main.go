package main

import "filesense/cmd/filesense-cli/cmd"

func main() {
	cmd.Execute()
}
