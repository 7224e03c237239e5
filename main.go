package main

import "ttgrab/cmd"

func main() {
	cmd.Execute()
}
