package main

import "github.com/scigolabs/goburgers/cmd"

func main() {
	cmd.Execute()
}
