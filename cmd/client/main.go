package main

import "github.com/HoangNobi25/thuchi/cmd/client/cmd"

func main() {
	cmd.Execute()
}
