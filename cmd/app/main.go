package main

import "YenDong/internal/cli"

func main() {
	cli.Execute()
}
