package main

import (
	"context"
	"fmt"
	"os"

	"gifmaker/cmd"
)

func main() {
	err := cmd.Cmd.Run(context.Background(), os.Args)
	if err != nil {
		fmt.Printf("❌ %s\n", err.Error())
		os.Exit(1)
	}
}
