package main

import "github.com/theirongolddev/waterlog/cmd"

func main() {
	cmd.Execute()
}
