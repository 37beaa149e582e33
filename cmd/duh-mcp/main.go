// Command duh-mcp serves the interaction helpers as MCP tools over stdio.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/spachava753/duh/tool"
)

const version = "v0.1.0"

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "duh",
		Version: version,
	}, nil)
	tool.AddTools(server)

	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		log.Fatalf("[duh-mcp] server stopped: %v", err)
	}
}
