package main

import "github.com/ppmportal/navsearch/cmd"

func main() {
	cmd.Execute()
}
