package editor

import (
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/qvar/vars"
)

const lsName = "qvar"

// LSPServer serves variables completion to an LSP client. The tokenizer is
// the host's: every completion request goes through the injected TokenSource.
type LSPServer struct {
	workspace *Workspace
	tokens    TokenSource
	handler   protocol.Handler
	server    *server.Server
	version   string
	log       commonlog.Logger

	// OnCompletion, when set, observes every non-empty result together with
	// the token that produced it.
	OnCompletion func(*vars.Result, vars.Token)
}

func NewLSPServer(version string, workspace *Workspace, tokens TokenSource) *LSPServer {
	ls := &LSPServer{
		workspace: workspace,
		tokens:    tokens,
		version:   version,
		log:       commonlog.GetLogger(lsName),
	}

	ls.handler = protocol.Handler{
		Initialize:             ls.initialize,
		Initialized:            ls.initialized,
		Shutdown:               ls.shutdown,
		SetTrace:               ls.setTrace,
		TextDocumentDidOpen:    ls.textDocumentDidOpen,
		TextDocumentDidChange:  ls.textDocumentDidChange,
		TextDocumentDidClose:   ls.textDocumentDidClose,
		TextDocumentDidSave:    ls.textDocumentDidSave,
		TextDocumentCompletion: ls.textDocumentCompletion,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	triggerChars := []string{"{", "\"", ":"}
	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: triggerChars,
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	ls.log.Info("client initialized")
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.workspace.UpdateDocument(string(params.TextDocument.URI), []byte(params.TextDocument.Text))
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.workspace.UpdateDocument(string(params.TextDocument.URI), []byte(textChange.Text))
		}
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.workspace.RemoveDocument(string(params.TextDocument.URI))
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		ls.workspace.UpdateDocument(string(params.TextDocument.URI), []byte(*params.Text))
	}
	return nil
}

func (ls *LSPServer) textDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	doc := ls.workspace.GetDocument(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}

	cur := vars.Position{
		Line:   int(params.Position.Line),
		Column: int(params.Position.Character),
	}

	token, ok := ls.tokens.TokenAt(doc, cur)
	if !ok {
		return nil, nil
	}

	result := vars.Hint(cur, token, ls.workspace.Options())
	if result == nil || len(result.List) == 0 {
		return nil, nil
	}

	ls.log.Debugf("completion at %s:%d:%d: %d candidates", doc.URI, cur.Line, cur.Column, len(result.List))

	if ls.OnCompletion != nil {
		ls.OnCompletion(result, token)
	}

	return completionItems(result), nil
}

// completionItems maps a core result to LSP completion items. The internal
// line/column range becomes a TextEdit so the client replaces exactly the
// span the core decided on.
func completionItems(result *Result) []protocol.CompletionItem {
	items := make([]protocol.CompletionItem, 0, len(result.List))
	for _, c := range result.List {
		item := protocol.CompletionItem{
			Label: c.Text,
			TextEdit: protocol.TextEdit{
				Range: protocol.Range{
					Start: protocol.Position{
						Line:      protocol.UInteger(result.From.Line),
						Character: protocol.UInteger(result.From.Column),
					},
					End: protocol.Position{
						Line:      protocol.UInteger(result.To.Line),
						Character: protocol.UInteger(result.To.Column),
					},
				},
				NewText: c.Text,
			},
		}
		kind := completionKind(c)
		item.Kind = &kind
		if c.Type != nil {
			detail := c.Type.String()
			item.Detail = &detail
		}
		if c.Description != "" {
			item.Documentation = c.Description
		}
		items = append(items, item)
	}
	return items
}

// Result aliases the core result type so hosts embedding the adapter do not
// need to import vars for the common case.
type Result = vars.Result

func completionKind(c vars.Candidate) protocol.CompletionItemKind {
	if c.Type == nil {
		return protocol.CompletionItemKindText
	}
	if c.Text == "true" || c.Text == "false" {
		return protocol.CompletionItemKindKeyword
	}
	if len(c.Text) > 0 && c.Text[len(c.Text)-1] != ' ' {
		// Bare quoted value, not a "name": prefix.
		return protocol.CompletionItemKindEnumMember
	}
	return protocol.CompletionItemKindField
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
