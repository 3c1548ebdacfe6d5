package main

import "github.com/theirongolddev/cwrapped/cmd"

func main() {
	cmd.Execute()
}
