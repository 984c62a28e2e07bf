// Command eventbot manages chat-bot events stored in a flat JSON document.
package main

import (
	"context"
	"os"

	"github.com/roach88/eventbot/internal/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
