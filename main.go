package main

import "github.com/pdekit/poisson2d/cmd"

func main() {
	cmd.Execute()
}
