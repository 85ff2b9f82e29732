package main

import "github.com/mheijink/brief/cmd"

func main() {
	cmd.Execute()
}
