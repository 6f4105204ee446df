// Command footpath navigates a campus walking map with Dijkstra's algorithm.
package main

import "github.com/katalvlaran/footpath/cmd/footpath/commands"

func main() {
	commands.Execute()
}
