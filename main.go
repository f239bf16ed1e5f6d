package main

import "github.com/jsphweid/triadex/cmd"

func main() {
	cmd.Execute()
}
