// Plain server entrypoint for deployments that don't need the full CLI.
package main

import (
	"fmt"
	"os"

	"github.com/shashiranjanraj/nightcap/internal/server"

	// Import migrations so their init() funcs run and register themselves.
	_ "github.com/shashiranjanraj/nightcap/database/migrations"
)

func main() {
	if err := server.Start(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
