package main

import (
	"github.com/go-imsto/imoptim/cmd"
)

func main() {
	cmd.Main()
}
