package main

import "github.com/Laisky/keyword-extractor/cmd"

func main() {
	cmd.Execute()
}
