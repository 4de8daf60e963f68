package lsp

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"fieldpath/cst"
	"fieldpath/parser"
)

// FieldpathHandler implements the LSP server handlers for the fieldpath
// language. Documents are kept in memory and reparsed on every change; the
// parser always yields a tree, so diagnostics stay live while the user is
// mid-edit.
type FieldpathHandler struct {
	mu      sync.RWMutex
	content map[string]string
	trees   map[string]*cst.Tree
}

func NewFieldpathHandler() *FieldpathHandler {
	return &FieldpathHandler{
		content: make(map[string]string),
		trees:   make(map[string]*cst.Tree),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *FieldpathHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
		},
	}, nil
}

func (h *FieldpathHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("Fieldpath LSP Initialized")
	return nil
}

func (h *FieldpathHandler) Shutdown(ctx *glsp.Context) error {
	log.Println("Fieldpath LSP Shutdown")
	return nil
}

func (h *FieldpathHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *FieldpathHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Printf("Opened file: %s\n", params.TextDocument.URI)

	diagnostics := h.updateTree(params.TextDocument.URI, params.TextDocument.Text)
	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)

	return nil
}

// TextDocumentDidChange handles file change notifications from the editor
func (h *FieldpathHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Printf("Changed file: %s\n", params.TextDocument.URI)

	text, ok := h.fullText(params)
	if !ok {
		return fmt.Errorf("no full-document change event for %s", params.TextDocument.URI)
	}

	diagnostics := h.updateTree(params.TextDocument.URI, text)
	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)

	return nil
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *FieldpathHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Printf("Closed file: %s\n", params.TextDocument.URI)

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, params.TextDocument.URI)
	delete(h.trees, params.TextDocument.URI)

	return nil
}

// Tree returns the last parsed tree for a document, if any. Used by tests
// and future request handlers (hover, selection ranges).
func (h *FieldpathHandler) Tree(uri string) (*cst.Tree, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	tree, ok := h.trees[uri]
	return tree, ok
}

func (h *FieldpathHandler) updateTree(uri string, text string) []protocol.Diagnostic {
	tree := parser.Parse(text)

	h.mu.Lock()
	h.content[uri] = text
	h.trees[uri] = tree
	h.mu.Unlock()

	return ConvertErrors(tree.Errors())
}

// fullText extracts the document text from a full-sync change notification.
func (h *FieldpathHandler) fullText(params *protocol.DidChangeTextDocumentParams) (string, bool) {
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			return c.Text, true
		case protocol.TextDocumentContentChangeEvent:
			return c.Text, true
		}
	}
	return "", false
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	diagnosticsJSON, err := json.MarshalIndent(diagnostics, "", "  ")
	if err != nil {
		fmt.Println("Failed to marshal diagnostics:", err)
		return
	}

	log.Println("Sending diagnostics:", string(diagnosticsJSON))

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
