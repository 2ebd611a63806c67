package main

import "github.com/Marcodez811/youtubegpt/cmd"

func main() {
	cmd.Execute()
}
