package main

import (
	"github.com/jsphweid/seedtrack/cmd"
)

func main() {
	cmd.Execute()
}
