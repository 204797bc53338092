package main

import "github.com/theirongolddev/lifeos/cmd"

func main() {
	cmd.Execute()
}
