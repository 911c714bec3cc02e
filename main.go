package main

import "github.com/Staninbui/stars-fetcher/cmd"

func main() {
	cmd.Execute()
}
