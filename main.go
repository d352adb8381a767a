package main

import "game-insights/cmd"

func main() {
	cmd.Execute()
}
