package lib

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	engineiotypes "github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

const ADMIN_NAMESPACE = "/admin"

var ErrRealtimeUnauthorized = errors.New("unauthorized")

var realtime *socket.Server

type RealtimeOptions struct {
	// Origin is passed to engine.io CORS: a string, *regexp.Regexp or bool.
	Origin any
	// Authorize checks the bearer token of an admin dashboard.
	Authorize func(token string) error
}

// HandshakeToken reads the token from the socket.io auth payload
// ({"token": "..."}) or from an Authorization bearer header.
func HandshakeToken(h *socket.Handshake) string {
	if h == nil {
		return ""
	}
	if auth, ok := h.Auth.(map[string]any); ok {
		if token, ok := auth["token"].(string); ok && token != "" {
			return strings.TrimPrefix(token, "Bearer ")
		}
	}
	for key, values := range h.Headers {
		if !strings.EqualFold(key, "Authorization") || len(values) == 0 {
			continue
		}
		scheme, token, ok := strings.Cut(values[0], " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}
	return ""
}

// AuthorizeHandshake fails closed when no authorizer is configured.
func AuthorizeHandshake(h *socket.Handshake, authorize func(string) error) error {
	token := HandshakeToken(h)
	if token == "" || authorize == nil {
		return ErrRealtimeUnauthorized
	}
	if err := authorize(token); err != nil {
		return ErrRealtimeUnauthorized
	}
	return nil
}

// NewRealtimeServer creates the socket.io server that pushes registration
// and message changes to admin dashboards.
func NewRealtimeServer(opts RealtimeOptions) (*socket.Server, http.Handler) {
	origin := opts.Origin
	if origin == nil {
		origin = false
	}
	s, isString := origin.(string)
	wildcard := isString && s == "*"

	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	c.SetPingInterval(25 * time.Second)
	c.SetPingTimeout(20 * time.Second)
	c.SetMaxHttpBufferSize(1_000_000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetCors(&engineiotypes.Cors{
		Origin:      origin,
		Credentials: !wildcard,
	})

	wss := socket.NewServer(nil, nil)
	admin := wss.Of(ADMIN_NAMESPACE, nil)
	admin.Use(func(client *socket.Socket, next func(*socket.ExtendedError)) {
		if err := AuthorizeHandshake(client.Handshake(), opts.Authorize); err != nil {
			log.Printf("[realtime] rejected %s: %s\n", client.Handshake().Address, err.Error())
			next(socket.NewExtendedError(err.Error(), nil))
			return
		}
		next(nil)
	})
	admin.On("connection", func(clients ...any) {
		client := clients[0].(*socket.Socket)
		log.Printf("[realtime] admin client connected: %s\n", string(client.Id()))
		client.On("disconnect", func(...any) {
			log.Printf("[realtime] admin client disconnected: %s\n", string(client.Id()))
		})
	})
	realtime = wss
	return wss, wss.ServeHandler(c)
}

// Broadcast emits event to every admin dashboard. It is a no-op until the
// realtime server has been created.
func Broadcast(event string, payload any) {
	if realtime == nil {
		return
	}
	realtime.Of(ADMIN_NAMESPACE, nil).Emit(event, payload)
}
