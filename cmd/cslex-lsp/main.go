package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"cslex/internal/lsp"
)

const lsName = "cslex"

var (
	version = "0.0.1"
	handler protocol.Handler
)

func main() {
	commonlog.Configure(1, nil)

	lexHandler := lsp.NewHandler()

	handler = protocol.Handler{
		Initialize:                     lexHandler.Initialize,
		Initialized:                    lexHandler.Initialized,
		Shutdown:                       lexHandler.Shutdown,
		SetTrace:                       lexHandler.SetTrace,
		TextDocumentDidOpen:            lexHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           lexHandler.TextDocumentDidClose,
		TextDocumentDidChange:          lexHandler.TextDocumentDidChange,
		TextDocumentCompletion:         lexHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: lexHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting cslex LSP server", version)

	if err := s.RunStdio(); err != nil {
		log.Println("Error starting cslex LSP server:", err)
		os.Exit(1)
	}
}
