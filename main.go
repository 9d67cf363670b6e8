package main

import "github.com/guipadovan/library-manager/internals/cli"

func main() {
	cli.Execute()
}
