package main

import "github.com/victorrathore/flowgen/cmd"

func main() {
	cmd.Execute()
}
