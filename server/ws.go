package server

import (
	"bufio"
	"crypto/sha1"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
)

const wsMagicGUID = "258EAFA5-E914-47DA-95CA-C5AB0DC85B11"

// computeAcceptKey implements RFC 6455 §1.3's handshake computation:
// base64(sha1(key + magic GUID)). Stdlib crypto/sha1 + encoding/base64,
// justified per §4.E point 2: the spec mandates this exact computation,
// not a library-brokered upgrade, and no pack repo imports a websocket
// library. Grounded on next-server/src/ws.rs's compute_accept_key.
func computeAcceptKey(key string) string {
	h := sha1.New()
	h.Write([]byte(key))
	h.Write([]byte(wsMagicGUID))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// WsMessageKind discriminates a WsMessage.
type WsMessageKind int

const (
	WsText WsMessageKind = iota
	WsBinary
	WsClose
)

// WsMessage is one frame received from a client.
type WsMessage struct {
	Kind WsMessageKind
	Text string
	Data []byte
}

// WsSender writes frames to a connected client. Safe for concurrent use.
type WsSender struct {
	mu   sync.Mutex
	conn net.Conn
}

// SendText writes a text frame.
func (s *WsSender) SendText(text string) error {
	return s.writeFrame(0x1, []byte(text))
}

// SendBinary writes a binary frame.
func (s *WsSender) SendBinary(data []byte) error {
	return s.writeFrame(0x2, data)
}

// Close sends a close frame.
func (s *WsSender) Close() error {
	return s.writeFrame(0x8, nil)
}

// writeFrame writes an unmasked server-to-client frame (servers never
// mask per RFC 6455 §5.1).
func (s *WsSender) writeFrame(opcode byte, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var header []byte
	header = append(header, 0x80|opcode)

	n := len(payload)
	switch {
	case n <= 125:
		header = append(header, byte(n))
	case n <= 0xFFFF:
		header = append(header, 126)
		var ext [2]byte
		binary.BigEndian.PutUint16(ext[:], uint16(n))
		header = append(header, ext[:]...)
	default:
		header = append(header, 127)
		var ext [8]byte
		binary.BigEndian.PutUint64(ext[:], uint64(n))
		header = append(header, ext[:]...)
	}

	if _, err := s.conn.Write(header); err != nil {
		return fmt.Errorf("server: ws write header: %w", err)
	}
	if len(payload) > 0 {
		if _, err := s.conn.Write(payload); err != nil {
			return fmt.Errorf("server: ws write payload: %w", err)
		}
	}
	return nil
}

// WsReceiver reads frames from a connected client. Client frames are
// always masked per RFC 6455 §5.3.
type WsReceiver struct {
	r *bufio.Reader
}

// Next reads and unmasks the next client frame, or returns io.EOF when
// the connection closes.
func (r *WsReceiver) Next() (WsMessage, error) {
	header := make([]byte, 2)
	if _, err := io.ReadFull(r.r, header); err != nil {
		return WsMessage{}, err
	}

	opcode := header[0] & 0x0F
	masked := header[1]&0x80 != 0
	length := uint64(header[1] & 0x7F)

	switch length {
	case 126:
		ext := make([]byte, 2)
		if _, err := io.ReadFull(r.r, ext); err != nil {
			return WsMessage{}, err
		}
		length = uint64(binary.BigEndian.Uint16(ext))
	case 127:
		ext := make([]byte, 8)
		if _, err := io.ReadFull(r.r, ext); err != nil {
			return WsMessage{}, err
		}
		length = binary.BigEndian.Uint64(ext)
	}

	var maskKey [4]byte
	if masked {
		if _, err := io.ReadFull(r.r, maskKey[:]); err != nil {
			return WsMessage{}, err
		}
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r.r, payload); err != nil {
		return WsMessage{}, err
	}
	if masked {
		for i := range payload {
			payload[i] ^= maskKey[i%4]
		}
	}

	switch opcode {
	case 0x8:
		return WsMessage{Kind: WsClose}, nil
	case 0x2:
		return WsMessage{Kind: WsBinary, Data: payload}, nil
	default:
		return WsMessage{Kind: WsText, Text: string(payload)}, nil
	}
}

// WsConnection pairs a connection's id with its sender/receiver halves.
type WsConnection struct {
	ID       string
	Sender   *WsSender
	Receiver *WsReceiver
}

// WsHandlerFunc handles the lifetime of one upgraded connection.
type WsHandlerFunc func(conn *WsConnection)

// WsRegistry maps websocket paths to handlers, grounded on
// next-server/src/ws.rs's WsRegistry.
type WsRegistry struct {
	handlers map[string]WsHandlerFunc
}

// NewWsRegistry creates an empty registry.
func NewWsRegistry() *WsRegistry {
	return &WsRegistry{handlers: make(map[string]WsHandlerFunc)}
}

// On registers handler for path.
func (r *WsRegistry) On(path string, handler WsHandlerFunc) {
	r.handlers[path] = handler
}

// GetHandler looks up the handler registered for path.
func (r *WsRegistry) GetHandler(path string) (WsHandlerFunc, bool) {
	h, ok := r.handlers[path]
	return h, ok
}

// HasRoute reports whether path has a registered handler.
func (r *WsRegistry) HasRoute(path string) bool {
	_, ok := r.handlers[path]
	return ok
}

// HandleUpgrade performs the RFC 6455 handshake over w/req and, on
// success, hands a WsConnection to handler in its own goroutine per §5
// ("one goroutine per connection communicating over bounded channels" —
// here the channel is the connection's own framing, since the handler
// owns the full connection lifetime rather than a message queue).
func (r *WsRegistry) HandleUpgrade(w http.ResponseWriter, req *http.Request, handler WsHandlerFunc) error {
	key := req.Header.Get("Sec-WebSocket-Key")
	hasUpgrade := strings.Contains(strings.ToLower(req.Header.Get("Upgrade")), "websocket")

	if key == "" || !hasUpgrade {
		http.Error(w, "Not a WebSocket request", http.StatusBadRequest)
		return fmt.Errorf("server: not a websocket request")
	}

	hijacker, ok := w.(http.Hijacker)
	if !ok {
		http.Error(w, "websocket upgrade unsupported", http.StatusInternalServerError)
		return fmt.Errorf("server: response writer does not support hijacking")
	}

	conn, rw, err := hijacker.Hijack()
	if err != nil {
		return fmt.Errorf("server: hijacking connection: %w", err)
	}

	accept := computeAcceptKey(key)
	response := "HTTP/1.1 101 Switching Protocols\r\n" +
		"Upgrade: websocket\r\n" +
		"Connection: Upgrade\r\n" +
		"Sec-WebSocket-Accept: " + accept + "\r\n" +
		"Sec-WebSocket-Version: 13\r\n\r\n"
	if _, err := rw.WriteString(response); err != nil {
		conn.Close()
		return fmt.Errorf("server: writing handshake response: %w", err)
	}
	if err := rw.Flush(); err != nil {
		conn.Close()
		return fmt.Errorf("server: flushing handshake response: %w", err)
	}

	wsConn := &WsConnection{
		ID:       uuid.NewString(),
		Sender:   &WsSender{conn: conn},
		Receiver: &WsReceiver{r: rw.Reader},
	}

	go func() {
		defer conn.Close()
		handler(wsConn)
	}()

	return nil
}
