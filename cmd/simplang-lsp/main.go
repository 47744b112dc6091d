// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"
	"simplang/internal/lsp"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

const lsName = "simplang" // Name identifier for the language server

var (
	version = "0.0.1"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)

	simpleLangHandler := lsp.NewSimpleLangHandler()

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:                     simpleLangHandler.Initialize,
		Initialized:                    simpleLangHandler.Initialized,
		Shutdown:                       simpleLangHandler.Shutdown,
		SetTrace:                       simpleLangHandler.SetTrace,
		TextDocumentDidOpen:            simpleLangHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           simpleLangHandler.TextDocumentDidClose,
		TextDocumentDidChange:          simpleLangHandler.TextDocumentDidChange,
		TextDocumentCompletion:         simpleLangHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: simpleLangHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting SimpleLang LSP server", version)

	// Serve over standard input/output (used by most editors for LSP)
	err := s.RunStdio()
	if err != nil {
		log.Println("Error starting SimpleLang LSP server:", err)
		os.Exit(1)
	}
}
