package main

import "prism/src/handler/cli"

func main() {
	cli.Run()
}
