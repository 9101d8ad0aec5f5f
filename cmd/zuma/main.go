package main

import "zuma/internal/game"

func main() {
	game.RunDesktop()
}
