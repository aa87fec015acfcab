package main

import "github.com/camresh/jshell/cmd"

func main() {
	cmd.Execute()
}
