package main

import "github.com/ademuri/concert-tools/cmd"

func main() {
	cmd.Execute()
}
