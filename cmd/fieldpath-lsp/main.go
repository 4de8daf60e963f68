package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"fieldpath/internal/lsp"
)

const lsName = "fieldpath" // Name identifier for the language server

var (
	version = "0.0.1"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)

	fieldpathHandler := lsp.NewFieldpathHandler()

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:            fieldpathHandler.Initialize,
		Initialized:           fieldpathHandler.Initialized,
		Shutdown:              fieldpathHandler.Shutdown,
		SetTrace:              fieldpathHandler.SetTrace,
		TextDocumentDidOpen:   fieldpathHandler.TextDocumentDidOpen,
		TextDocumentDidClose:  fieldpathHandler.TextDocumentDidClose,
		TextDocumentDidChange: fieldpathHandler.TextDocumentDidChange,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting Fieldpath LSP server...")

	// Serve over standard input/output, the transport editors expect
	err := s.RunStdio()
	if err != nil {
		log.Println("Error starting Fieldpath LSP server:", err)
		os.Exit(1)
	}
}
