package main

import "ideaforge/cmd"

func main() {
	cmd.Execute()
}
