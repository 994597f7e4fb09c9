package main

import "breezechess/cmd"

func main() {
	cmd.Execute()
}
