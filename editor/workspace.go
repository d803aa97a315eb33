// Package editor adapts the completion core to a host editor speaking the
// Language Server Protocol. The host's tokenizer stays external: it is
// plugged in through the TokenSource interface.
package editor

import (
	"sync"

	"github.com/dhamidi/qvar/graphql"
	"github.com/dhamidi/qvar/vars"
)

// Document is one open variables buffer.
type Document struct {
	URI     string
	Content []byte
}

// TokenSource produces the token (with its parse-state chain) at a position
// of a document. Implementations live in the embedding host; producing parse
// states from text is outside this module.
type TokenSource interface {
	TokenAt(doc *Document, pos vars.Position) (vars.Token, bool)
}

// Workspace tracks open documents plus the session's schema and declared
// variable types. Safe for concurrent use.
type Workspace struct {
	mu       sync.RWMutex
	docs     map[string]*Document
	schema   *graphql.Schema
	varTypes map[string]graphql.Type
}

func NewWorkspace(schema *graphql.Schema, varTypes map[string]graphql.Type) *Workspace {
	return &Workspace{
		docs:     make(map[string]*Document),
		schema:   schema,
		varTypes: varTypes,
	}
}

func (w *Workspace) UpdateDocument(uri string, content []byte) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.docs[uri] = &Document{URI: uri, Content: content}
}

func (w *Workspace) RemoveDocument(uri string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.docs, uri)
}

func (w *Workspace) GetDocument(uri string) *Document {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.docs[uri]
}

func (w *Workspace) Schema() *graphql.Schema {
	return w.schema
}

// SetVariableTypes replaces the declared variable types, e.g. after the host
// switched to a different operation.
func (w *Workspace) SetVariableTypes(varTypes map[string]graphql.Type) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.varTypes = varTypes
}

// Options snapshots the completion options for one request.
func (w *Workspace) Options() vars.Options {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return vars.Options{VariableToType: w.varTypes}
}
