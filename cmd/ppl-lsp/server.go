package main

import (
	"net/url"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	glspserver "github.com/tliron/glsp/server"

	"github.com/funvibe/ppl/internal/config"
	"github.com/funvibe/ppl/internal/executable"
	"github.com/funvibe/ppl/internal/pipeline"
	"github.com/funvibe/ppl/pkg/host"
)

const lspName = "ppl-lsp"

var log = commonlog.GetLogger("ppl.lsp")

// document is an open editor buffer and the result of its last compile
type document struct {
	uri     protocol.DocumentUri
	content string
	ctx     *pipeline.PipelineContext
}

// LanguageServer answers editor requests from the compile pipeline
type LanguageServer struct {
	mu       sync.Mutex
	docs     map[protocol.DocumentUri]*document
	registry *executable.TypeRegistry

	handler protocol.Handler
	server  *glspserver.Server
	version string
}

func NewServer() *LanguageServer {
	registry := executable.NewTypeRegistry()
	if err := host.RegisterTypes(registry); err != nil {
		log.Errorf("register host types: %s", err)
	}
	s := &LanguageServer{
		docs:     make(map[protocol.DocumentUri]*document),
		registry: registry,
		version:  config.Version,
	}

	s.handler = protocol.Handler{
		Initialize:  s.initialize,
		Initialized: s.initialized,
		Shutdown:    s.shutdown,
		SetTrace:    s.setTrace,

		TextDocumentDidOpen:   s.textDocumentDidOpen,
		TextDocumentDidChange: s.textDocumentDidChange,
		TextDocumentDidClose:  s.textDocumentDidClose,

		TextDocumentCompletion: s.textDocumentCompletion,
		TextDocumentHover:      s.textDocumentHover,
		TextDocumentDefinition: s.textDocumentDefinition,
		TextDocumentFormatting: s.textDocumentFormatting,
	}
	s.server = glspserver.NewServer(&s.handler, lspName, false)
	return s
}

// Run serves on stdio until the client disconnects
func (s *LanguageServer) Run() error {
	return s.server.RunStdio()
}

func (s *LanguageServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("initializing")

	capabilities := s.handler.CreateServerCapabilities()
	syncKind := protocol.TextDocumentSyncKindFull
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    &syncKind,
	}
	capabilities.CompletionProvider = &protocol.CompletionOptions{}
	capabilities.HoverProvider = true
	capabilities.DefinitionProvider = true
	capabilities.DocumentFormattingProvider = true

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lspName,
			Version: &s.version,
		},
	}, nil
}

func (s *LanguageServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *LanguageServer) shutdown(ctx *glsp.Context) error {
	return nil
}

func (s *LanguageServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	return nil
}

func (s *LanguageServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := s.open(params.TextDocument.URI, params.TextDocument.Text)
	s.publishDiagnostics(ctx.Notify, doc)
	return nil
}

func (s *LanguageServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	// with full sync the last change holds the whole text
	if len(params.ContentChanges) == 0 {
		return nil
	}
	last := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := last.(protocol.TextDocumentContentChangeEventWhole); ok {
		doc := s.open(params.TextDocument.URI, whole.Text)
		s.publishDiagnostics(ctx.Notify, doc)
	}
	return nil
}

func (s *LanguageServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	s.mu.Lock()
	delete(s.docs, uri)
	s.mu.Unlock()

	go ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

// open compiles text and stores it as the current state of uri
func (s *LanguageServer) open(uri protocol.DocumentUri, text string) *document {
	doc := &document{uri: uri, content: text, ctx: s.analyze(uri, text)}
	s.mu.Lock()
	s.docs[uri] = doc
	s.mu.Unlock()
	return doc
}

func (s *LanguageServer) document(uri protocol.DocumentUri) (*document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[uri]
	return doc, ok
}

// analyze runs the compile stages on a buffer with the settings of the
// workspace the file lives in
func (s *LanguageServer) analyze(uri protocol.DocumentUri, text string) *pipeline.PipelineContext {
	path := uriToPath(uri)
	ctx := &pipeline.PipelineContext{
		SourceCode:      text,
		FilePath:        path,
		LanguageVersion: config.DefaultLanguageVersion,
		Registry:        s.registry,
	}
	if ws, err := config.FindAndLoad(dirOf(path)); err != nil {
		log.Warningf("%s: %s", path, err)
	} else if ws != nil {
		ctx.LanguageVersion = ws.Package.LanguageVersion
		ctx.Runtime = ws.Package.Runtime
		ctx.Defines = ws.Compiler.Defines
		ctx.UserVariables = ws.Compiler.UserVariables
	}
	return host.Compile(ctx)
}

func uriToPath(uri protocol.DocumentUri) string {
	s := string(uri)
	if !strings.HasPrefix(s, "file://") {
		return s
	}
	u, err := url.Parse(s)
	if err != nil {
		return strings.TrimPrefix(s, "file://")
	}
	return u.Path
}

func dirOf(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[:i]
	}
	return "."
}

func boolPtr(b bool) *bool { return &b }
