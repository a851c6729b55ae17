package main

import "usermap-reconciler/cmd"

func main() {
	cmd.Execute()
}
