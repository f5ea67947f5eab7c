package main

import "github.com/jywlabs/namegame/cmd"

func main() {
	cmd.Execute()
}
