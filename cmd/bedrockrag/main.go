package main

import "bedrockrag/internal/cli"

func main() {
	cli.Execute()
}
