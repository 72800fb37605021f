// Package publish sends resolution results to a Socket.IO endpoint, such as a
// build dashboard, once a run has succeeded.
package publish

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/kevindugan/dependencyTree/internal/ctxlog"
	"github.com/kevindugan/dependencyTree/internal/render"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// EventName is the Socket.IO event a result is emitted as.
const EventName = "resolution"

// DefaultTimeout bounds how long Publish waits for the connection and, again,
// for the server to acknowledge the event.
const DefaultTimeout = 15 * time.Second

// defaultPath is the Socket.IO endpoint used when the URL has no path.
const defaultPath = "/socket.io"

// ErrInvalidURL is returned for a publish URL that is not an absolute
// http(s) or ws(s) URL.
var ErrInvalidURL = errors.New("invalid publish URL")

// Publisher emits results over Socket.IO.
type Publisher struct {
	URL       string
	Namespace string
	Timeout   time.Duration
}

// New validates rawURL and returns a Publisher for it. An empty namespace
// means the default "/" namespace.
func New(rawURL, namespace string) (*Publisher, error) {
	if _, err := parseURL(rawURL); err != nil {
		return nil, err
	}
	if namespace == "" {
		namespace = "/"
	}
	return &Publisher{URL: rawURL, Namespace: namespace, Timeout: DefaultTimeout}, nil
}

// Payload converts a result into the event body.
func Payload(r *render.Result) map[string]any {
	payload := map[string]any{
		"source": r.Source,
		"order":  r.OrderNames(),
	}
	if r.Target != "" {
		payload["target"] = r.Target
	}
	if r.RootsOf != "" {
		payload["roots_of"] = r.RootsOf
		payload["roots"] = r.Roots
	}
	return payload
}

// Publish connects, emits r as an EventName event, waits for the server to
// acknowledge it, and disconnects. A server that never acknowledges the event
// fails the call once the timeout elapses.
func (p *Publisher) Publish(ctx context.Context, r *render.Result) error {
	logger := ctxlog.FromContext(ctx).With("url", p.URL, "namespace", p.Namespace)
	logger.Debug("Publishing resolution result.")

	parsedURL, err := parseURL(p.URL)
	if err != nil {
		return err
	}

	path := parsedURL.Path
	if path == "" || path == "/" {
		path = defaultPath
	}
	opts := socket.DefaultOptions()
	opts.SetPath(path)
	opts.SetTransports(types.NewSet(transports.WebSocket))

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(p.Namespace, opts)
	defer func() {
		logger.Debug("Disconnecting socket client")
		io.Disconnect()
	}()

	connectChan := make(chan error, 2)
	io.Once(types.EventName("connect"), func(...any) {
		logger.Debug("Connected", "sid", io.Id())
		connectChan <- nil
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		var err error = errors.New("connect_error")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = e
			}
		}
		connectChan <- err
	})

	io.Connect()

	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	select {
	case err := <-connectChan:
		if err != nil {
			return fmt.Errorf("socket.io connection failed: %w", err)
		}
	case <-ctx.Done():
		return fmt.Errorf("context cancelled while waiting for socket.io connection: %w", ctx.Err())
	case <-time.After(timeout):
		return fmt.Errorf("timed out after %s waiting for socket.io connection", timeout)
	}

	ackChan := make(chan error, 1)
	io.Timeout(timeout).EmitWithAck(EventName, Payload(r))(func(_ []any, err error) {
		ackChan <- err
	})

	select {
	case err := <-ackChan:
		if err != nil {
			return fmt.Errorf("%q event not acknowledged: %w", EventName, err)
		}
	case <-ctx.Done():
		return fmt.Errorf("context cancelled while waiting for %q acknowledgement: %w", EventName, ctx.Err())
	}

	logger.Info("Resolution result published.", "event", EventName, "nodes", len(r.Order))
	return nil
}

// parseURL accepts absolute http, https, ws and wss URLs.
func parseURL(rawURL string) (*url.URL, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	switch u.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: missing host in %q", ErrInvalidURL, rawURL)
	}
	return u, nil
}
