// DebugQuest: a debugging-quest MCP server.
//
// An MCP server that integrates with any AI coding tool (Claude Code,
// OpenCode, Gemini CLI, Cursor, VS Code Copilot) and turns debugging
// sessions into stateful fantasy quests: bugs become monsters, findings
// drive phase progression, and fixed bugs pay experience.
//
// Usage:
//
//	debugquest serve    # Start MCP server (stdio transport)
package main

import (
	"fmt"
	"os"

	questserver "debugquest/internal/server"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("debugquest v%s\n", questserver.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func run() error {
	s, err := questserver.New()
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	// stdout belongs to the MCP stdio transport; anything else goes to
	// stderr. The stdio server manages its own lifecycle and returns on
	// host disconnect.
	return server.ServeStdio(s)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `DebugQuest v%s — Debugging Quest MCP Server

Usage:
  debugquest serve    Start the MCP server (stdio transport)

Configuration:
  Add to your AI tool's MCP config:

  {
    "mcpServers": {
      "debugquest": {
        "command": "debugquest",
        "args": ["serve"]
      }
    }
  }
`, questserver.Version)
}
