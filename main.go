package main

import "github.com/gaurav-prasanna/detexml/cmd"

func main() {
	cmd.Execute()
}
