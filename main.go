package main

import "github.com/mouse-blink/v8tojsni/cmd"

func main() {
	cmd.Execute()
}
