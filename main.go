package main

import "club-content-api/cmd"

func main() {
	cmd.Execute()
}
