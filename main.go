package main

import "github.com/HaniMe9/abe-garage-hani/cmd"

func main() {
	cmd.Execute()
}
