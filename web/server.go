// Package web exposes editing sessions over a WebSocket JSON-RPC protocol.
//
// A client opens a session with "open" and then drives it with edit and
// query methods, each carrying the session ID. Offsets are UTF-16 code units.
// Highlight and line number updates are pushed to the client that opened the
// session as "highlightsChanged" and "lineNumbersChanged" notifications.
package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/odvcencio/scribe/completion"
	"github.com/odvcencio/scribe/editor"
	"github.com/odvcencio/scribe/highlight"
	"github.com/odvcencio/scribe/language"
	"github.com/odvcencio/scribe/logging"
	"github.com/odvcencio/scribe/textpos"
)

var log = logging.Log

// JSON-RPC error codes.
const (
	codeUnknownSession = -32000
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
)

// Server provides the HTTP + WebSocket API.
type Server struct {
	config   editor.Config
	upgrader websocket.Upgrader
	metrics  http.Handler

	mu       sync.Mutex
	clients  []*wsClient
	sessions map[string]*session
}

type wsClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

type session struct {
	id    string
	owner *wsClient
	ctrl  *editor.Controller
}

type rpcRequest struct {
	ID     any             `json:"id"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

type rpcResponse struct {
	ID     any       `json:"id"`
	Result any       `json:"result,omitempty"`
	Error  *rpcError `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type notification struct {
	Method string `json:"method"`
	Params any    `json:"params"`
}

// params is the union of every method's parameters.
type params struct {
	Session  string `json:"session"`
	Text     string `json:"text"`
	Language string `json:"language"`
	Filename string `json:"filename"`
	Offset   int    `json:"offset"`
	Length   int    `json:"length"`
	Position int    `json:"position"`
}

func (p params) rng() textpos.Range {
	return textpos.Range{Offset: p.Offset, Length: p.Length}
}

type editResult struct {
	Applied bool          `json:"applied"`
	Version uint64        `json:"version"`
	Cursor  textpos.Range `json:"cursor"`
}

type stateResult struct {
	Text        string          `json:"text"`
	Language    language.ID     `json:"language"`
	Version     uint64          `json:"version"`
	Cursor      textpos.Range   `json:"cursor"`
	Selections  []textpos.Range `json:"selections"`
	LineNumbers []int           `json:"lineNumbers"`
	CanUndo     bool            `json:"canUndo"`
	CanRedo     bool            `json:"canRedo"`
	Indent      string          `json:"indent"`
}

type highlightsChanged struct {
	Session  string                     `json:"session"`
	Version  uint64                     `json:"version"`
	Language language.ID                `json:"language"`
	Ranges   []highlight.HighlightRange `json:"ranges"`
}

type lineNumbersChanged struct {
	Session string `json:"session"`
	Lines   []int  `json:"lines"`
}

// NewServer creates a server whose sessions use the given preferences.
func NewServer(config editor.Config) *Server {
	return &Server{
		config: config,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		metrics:  promhttp.Handler(),
		sessions: make(map[string]*session),
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/ws":
		s.handleWebSocket(w, r)
	case "/metrics":
		s.metrics.ServeHTTP(w, r)
	default:
		http.NotFound(w, r)
	}
}

// Sessions returns the number of open sessions.
func (s *Server) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Close ends every session.
func (s *Server) Close() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*session)
	s.mu.Unlock()
	for _, sess := range sessions {
		sess.ctrl.Close()
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warning("websocket upgrade: %s", err)
		return
	}
	client := &wsClient{conn: conn}
	s.mu.Lock()
	s.clients = append(s.clients, client)
	s.mu.Unlock()

	defer func() {
		conn.Close()
		s.dropClient(client)
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var req rpcRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			log.Debug("Ignoring malformed request: %s", err)
			continue
		}
		client.send(s.handleRPC(client, req))
	}
}

// dropClient forgets a disconnected client and closes the sessions it opened.
func (s *Server) dropClient(client *wsClient) {
	s.mu.Lock()
	for i, c := range s.clients {
		if c == client {
			s.clients = append(s.clients[:i], s.clients[i+1:]...)
			break
		}
	}
	var orphaned []*session
	for id, sess := range s.sessions {
		if sess.owner == client {
			orphaned = append(orphaned, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range orphaned {
		sess.ctrl.Close()
		log.Debug("Closed session %s on disconnect", sess.id)
	}
}

func (c *wsClient) send(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Warning("encoding message: %s", err)
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		log.Debug("websocket write: %s", err)
	}
}

func (s *Server) handleRPC(client *wsClient, req rpcRequest) rpcResponse {
	var p params
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &p); err != nil {
			return errorResponse(req.ID, codeInvalidParams, err.Error())
		}
	}

	switch req.Method {
	case "open":
		return rpcResponse{ID: req.ID, Result: s.open(client, p)}
	case "close", "setText", "setLanguage", "insertText", "typeText", "insertNewline", "insertTab",
		"deleteText", "replaceText", "undo", "redo", "setCursor", "addSelection", "clearSelections",
		"selectedText", "getCompletions", "findMatchingBracket", "state":
	default:
		return errorResponse(req.ID, codeMethodNotFound, fmt.Sprintf("unknown method: %s", req.Method))
	}

	s.mu.Lock()
	sess := s.sessions[p.Session]
	s.mu.Unlock()
	// Only the client that opened a session may use it.
	if sess == nil || sess.owner != client {
		return errorResponse(req.ID, codeUnknownSession, fmt.Sprintf("unknown session: %q", p.Session))
	}
	return rpcResponse{ID: req.ID, Result: s.call(sess, req.Method, p)}
}

func errorResponse(id any, code int, msg string) rpcResponse {
	return rpcResponse{ID: id, Error: &rpcError{Code: code, Message: msg}}
}

// open starts a session. The language is taken from params, or detected
// from the filename and text when none is given.
func (s *Server) open(client *wsClient, p params) map[string]string {
	ctrl := editor.NewController(editor.WithConfig(s.config))
	sess := &session{id: uuid.NewString(), owner: client, ctrl: ctrl}

	ctrl.OnHighlights(func(u editor.HighlightUpdate) {
		client.send(notification{Method: "highlightsChanged", Params: highlightsChanged{
			Session:  sess.id,
			Version:  u.Version,
			Language: u.Language,
			Ranges:   u.Ranges,
		}})
	})
	ctrl.OnLineNumbers(func(lines []int) {
		client.send(notification{Method: "lineNumbersChanged", Params: lineNumbersChanged{
			Session: sess.id,
			Lines:   lines,
		}})
	})

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	ctrl.SetText(p.Text)
	ctrl.SetLanguage(resolveLanguage(p))
	log.Debug("Opened session %s (%s)", sess.id, ctrl.Language())
	return map[string]string{"session": sess.id}
}

func resolveLanguage(p params) language.ID {
	if p.Language != "" {
		id, _ := language.Parse(p.Language)
		return id
	}
	if p.Filename != "" {
		return language.DetectContent(p.Filename, p.Text)
	}
	return language.Plain
}

// call runs a session method. Every method succeeds; edits that cannot be
// applied report applied=false.
func (s *Server) call(sess *session, method string, p params) any {
	c := sess.ctrl
	edit := func(applied bool) editResult {
		return editResult{Applied: applied, Version: c.Version(), Cursor: c.Cursor()}
	}

	switch method {
	case "close":
		s.mu.Lock()
		delete(s.sessions, sess.id)
		s.mu.Unlock()
		c.Close()
		return map[string]string{"status": "closed"}
	case "setText":
		c.SetText(p.Text)
		return edit(true)
	case "setLanguage":
		id, _ := language.Parse(p.Language)
		c.SetLanguage(id)
		return map[string]language.ID{"language": id}
	case "insertText":
		return edit(c.InsertText(p.Text))
	case "typeText":
		return edit(c.TypeText(p.Text))
	case "insertNewline":
		return edit(c.InsertNewline())
	case "insertTab":
		return edit(c.InsertTab())
	case "deleteText":
		return edit(c.DeleteText(p.rng()))
	case "replaceText":
		return edit(c.ReplaceText(p.rng(), p.Text))
	case "undo":
		return edit(c.Undo())
	case "redo":
		return edit(c.Redo())
	case "setCursor":
		return edit(c.SetCursor(p.rng()))
	case "addSelection":
		ok := c.AddSelection(p.rng())
		return map[string]any{"applied": ok, "selections": c.Selections()}
	case "clearSelections":
		c.ClearSelections()
		return map[string]any{"applied": true, "selections": []textpos.Range{}}
	case "selectedText":
		text, ok := c.SelectedText()
		return map[string]any{"selection": ok, "text": text}
	case "getCompletions":
		items := c.GetCompletions()
		if items == nil {
			items = []completion.Completion{}
		}
		return map[string]any{"items": items}
	case "findMatchingBracket":
		pos, ok := c.FindMatchingBracket(p.Position)
		return map[string]any{"found": ok, "position": pos}
	default: // "state"
		return stateResult{
			Text:        c.Text(),
			Language:    c.Language(),
			Version:     c.Version(),
			Cursor:      c.Cursor(),
			Selections:  c.Selections(),
			LineNumbers: c.LineNumbers(),
			CanUndo:     c.CanUndo(),
			CanRedo:     c.CanRedo(),
			Indent:      c.IndentUnit(),
		}
	}
}
