package main

import "github.com/lixenwraith/golden-spiral/cmd"

func main() {
	cmd.Execute()
}
