// Package websocket pushes chat events to connected browsers. It keeps an
// in-process client table; messages themselves travel over HTTP, so the
// gateway only fans finished payloads out to recipients.
package websocket

import (
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"school_hub_server/pkg/constants"
)

// Server owns the online-client table. Login and logout flow through
// channels so the table is only touched from the Start loop; PublishToUsers
// reads it through sync.Map, which is safe concurrently.
type Server struct {
	clients sync.Map // user uuid -> *Client
	login   chan *Client
	logout  chan *Client
}

// ChatServer is the process-wide instance, started in main.
var ChatServer = NewServer()

// NewServer builds an idle server; call Start in a goroutine to run it.
func NewServer() *Server {
	return &Server{
		login:  make(chan *Client, constants.CHANNEL_SIZE),
		logout: make(chan *Client, constants.CHANNEL_SIZE),
	}
}

// Start runs the client bookkeeping loop until Close.
func (s *Server) Start() {
	for {
		select {
		case client, ok := <-s.login:
			if !ok {
				return
			}
			if client == nil {
				continue
			}
			// A reconnect replaces the previous socket for the same user.
			if prev, loaded := s.clients.Load(client.Uuid); loaded {
				s.disconnect(prev.(*Client))
			}
			s.clients.Store(client.Uuid, client)
			zap.L().Info("ws client online", zap.String("user", client.Uuid))

		case client, ok := <-s.logout:
			if !ok {
				return
			}
			if client == nil {
				continue
			}
			// Only remove the entry if it still points at this socket.
			if cur, loaded := s.clients.Load(client.Uuid); loaded && cur.(*Client) == client {
				s.clients.Delete(client.Uuid)
			}
			s.disconnect(client)
			zap.L().Info("ws client offline", zap.String("user", client.Uuid))
		}
	}
}

func (s *Server) disconnect(client *Client) {
	defer func() {
		// Closing an already-closed Send channel on a racing double logout.
		if r := recover(); r != nil {
			zap.L().Debug("ws disconnect recover", zap.Any("reason", r))
		}
	}()
	_ = client.Conn.Close()
	close(client.Send)
}

// Close drops every connection and stops the Start loop.
func (s *Server) Close() {
	s.clients.Range(func(_, v any) bool {
		s.disconnect(v.(*Client))
		return true
	})
	close(s.login)
	close(s.logout)
}

// SendClientToLogin registers a freshly upgraded connection.
func (s *Server) SendClientToLogin(client *Client) {
	s.login <- client
}

// SendClientToLogout unregisters a connection.
func (s *Server) SendClientToLogout(client *Client) {
	s.logout <- client
}

// PublishToUsers delivers one payload to every listed user that is online.
// Offline users are skipped; they will see the message on the next HTTP
// fetch. Implements the message service's Publisher.
func (s *Server) PublishToUsers(userIds []string, payload []byte) {
	for _, uuid := range userIds {
		v, ok := s.clients.Load(uuid)
		if !ok {
			continue
		}
		client := v.(*Client)
		select {
		case client.Send <- payload:
		default:
			zap.L().Warn("ws send buffer full, dropping push", zap.String("user", uuid))
		}
	}
}

// Serve upgrades an authenticated request. The JWT middleware has already
// put user_id into the gin context.
func Serve(c *gin.Context, userUuid string) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Error("ws upgrade error", zap.Error(err))
		return
	}
	client := newClient(conn, userUuid)
	ChatServer.SendClientToLogin(client)
	go client.read(ChatServer)
	go client.write()
}
