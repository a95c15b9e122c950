package main

import "github.com/ccwc/ccwc/cmd"

func main() {
	cmd.Execute()
}
