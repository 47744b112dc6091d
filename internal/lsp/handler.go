package lsp

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"simplang/internal/ast"
	"simplang/internal/parser"
	"sort"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Define the set of supported semantic token types (as required by the LSP spec)
var SemanticTokenTypes = []string{
	"namespace",
	"type",
	"typeParameter",
	"function",
	"variable",
	"parameter",
	"property",
	"keyword",
	"number",
	"string",
	"operator",
	"modifier",
}

// Define the set of supported semantic token modifiers (for extra tagging like declaration, readonly, etc.)
var SemanticTokenModifiers = []string{
	"declaration",
	"definition",
	"readonly",
	"static",
	"deprecated",
	"abstract",
}

// SimpleLangHandler implements the LSP server handlers for SimpleLang
type SimpleLangHandler struct {
	mu      sync.RWMutex
	content map[string]string
	asts    map[string]*ast.Program
}

// NewSimpleLangHandler creates and returns a new SimpleLangHandler instance
func NewSimpleLangHandler() *SimpleLangHandler {
	return &SimpleLangHandler{
		content: make(map[string]string),
		asts:    make(map[string]*ast.Program),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *SimpleLangHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true), // notify on open/close events
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false), // no additional detail resolution yet
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true), // support full-document semantic token requests
			},
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities and completes initialization
func (h *SimpleLangHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("SimpleLang LSP Initialized")
	return nil
}

// SetTrace handles trace level changes from the client
func (h *SimpleLangHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *SimpleLangHandler) Shutdown(ctx *glsp.Context) error {
	log.Println("SimpleLang LSP Shutdown")
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *SimpleLangHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Printf("Opened file: %s\n", params.TextDocument.URI)

	diagnostics, err := h.updateAST(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to update AST: %w", err)
	}

	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *SimpleLangHandler) TextDocumentDidClose(context *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Printf("Closed file: %s\n", params.TextDocument.URI)

	rawURI := params.TextDocument.URI

	path, err := uriToPath(rawURI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, path)
	delete(h.asts, path)

	return nil
}

// TextDocumentDidChange handles file change notifications from the editor
func (h *SimpleLangHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Printf("Changed file: %s\n", params.TextDocument.URI)

	diagnostics, err := h.updateAST(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to update AST: %w", err)
	}

	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentCompletion offers the keyword set plus identifiers already
// declared in the document.
func (h *SimpleLangHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (interface{}, error) {
	items := keywordCompletionItems()

	path, err := uriToPath(params.TextDocument.URI)
	if err == nil {
		h.mu.RLock()
		program := h.asts[path]
		h.mu.RUnlock()
		items = append(items, declaredNameCompletionItems(program)...)
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *SimpleLangHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	log.Println("TextDocumentSemanticTokensFull called for:", params.TextDocument.URI)

	rawURI := params.TextDocument.URI

	path, err := uriToPath(rawURI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	program, err := h.getOrUpdateAST(ctx, path, rawURI)
	if err != nil {
		return nil, err
	}

	// Walk the AST and collect semantic tokens
	tokens := collectSemanticTokens(program)

	var data []uint32
	var prevLine, prevStart uint32

	// Encode tokens into LSP wire format (using delta-line, delta-start compression)
	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		// Append the encoded semantic token entry
		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return &protocol.SemanticTokens{
		Data: data,
	}, nil
}

func (h *SimpleLangHandler) getOrUpdateAST(ctx *glsp.Context, path string, rawURI protocol.DocumentUri) (*ast.Program, error) {
	h.mu.RLock()
	program, ok := h.asts[path]
	h.mu.RUnlock()

	if !ok {
		diagnostics, err := h.updateAST(rawURI)
		if err != nil {
			return nil, err
		}

		h.mu.RLock()
		program = h.asts[path]
		h.mu.RUnlock()

		if len(diagnostics) > 0 {
			sendDiagnosticNotification(ctx, rawURI, diagnostics)
		}
	}

	return program, nil
}

// updateAST reparses the file behind the URI and caches its AST. The
// partial tree is kept even when the parse produced errors, so semantic
// tokens and completion keep working while the user types.
func (h *SimpleLangHandler) updateAST(rawURI protocol.DocumentUri) ([]protocol.Diagnostic, error) {
	path, err := uriToPath(rawURI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	program, parseErrors, scanErrors := parser.ParseSource(path, string(content))

	h.mu.Lock()
	h.content[path] = string(content)
	h.asts[path] = program
	h.mu.Unlock()

	diagnostics := ConvertScanErrors(scanErrors)
	diagnostics = append(diagnostics, ConvertParseErrors(parseErrors)...)
	return diagnostics, nil
}

func keywordCompletionItems() []protocol.CompletionItem {
	var items []protocol.CompletionItem
	for _, kw := range parser.KeywordSpellings() {
		keyword := kw
		kind := protocol.CompletionItemKindKeyword
		items = append(items, protocol.CompletionItem{
			Label: keyword,
			Kind:  &kind,
		})
	}
	return items
}

// declaredNameCompletionItems collects identifiers from declaration
// statements anywhere in the cached program.
func declaredNameCompletionItems(program *ast.Program) []protocol.CompletionItem {
	if program == nil {
		return nil
	}

	seen := make(map[string]bool)
	collectDeclaredNames(program.Statements, seen)

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	var items []protocol.CompletionItem
	for _, name := range names {
		variable := name
		kind := protocol.CompletionItemKindVariable
		items = append(items, protocol.CompletionItem{
			Label: variable,
			Kind:  &kind,
		})
	}
	return items
}

func collectDeclaredNames(statements []ast.Stmt, seen map[string]bool) {
	for _, stmt := range statements {
		switch v := stmt.(type) {
		case *ast.DeclareStmt:
			seen[v.Name.Value] = true
		case *ast.Block:
			collectDeclaredNames(v.Statements, seen)
		case *ast.IfStmt:
			collectDeclaredNames([]ast.Stmt{v.Then}, seen)
			if v.Else != nil {
				collectDeclaredNames([]ast.Stmt{v.Else}, seen)
			}
		case *ast.WhileStmt:
			collectDeclaredNames([]ast.Stmt{v.Body}, seen)
		case *ast.DoWhileStmt:
			collectDeclaredNames([]ast.Stmt{v.Body}, seen)
		case *ast.ForStmt:
			if v.Init != nil {
				collectDeclaredNames([]ast.Stmt{v.Init}, seen)
			}
			collectDeclaredNames([]ast.Stmt{v.Body}, seen)
		}
	}
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) â†’ C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	// Normalize to platform-specific separators
	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}

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
