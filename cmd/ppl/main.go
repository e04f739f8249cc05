package main

import "github.com/funvibe/ppl/pkg/cli"

func main() {
	cli.Run()
}
