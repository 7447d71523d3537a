package main

import "eventdesk/internal/cli"

func main() {
	cli.Execute()
}
