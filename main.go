package main

import "github.com/papapumpkin/aeon/cmd"

func main() {
	cmd.Execute()
}
