package main

import (
	"fmt"
	"os"

	"github.com/brewnote/brewnote/brewnoteservice"
)

func main() {
	if err := brewnoteservice.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
