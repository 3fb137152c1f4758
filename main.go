package main

import "github.com/RyanBlaney/audio-featurize/cmd"

func main() {
	cmd.Execute()
}
