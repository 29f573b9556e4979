package framework

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

const httpListenerTimeout = time.Second * 10

// StartServer serves handler on the given local port in the background, and returns once the
// listener is accepting connections. A port of 0 picks a free port. The returned server's Addr is
// "localhost:<port>" with the actual port. Call Close or Shutdown on the server to stop it.
func StartServer(port int, handler http.Handler) (*http.Server, error) {
	listener, err := listenLocal(port)
	if err != nil {
		return nil, err
	}
	server := &http.Server{
		Addr:              fmt.Sprintf("localhost:%d", listener.Addr().(*net.TCPAddr).Port),
		Handler:           handler,
		ReadHeaderTimeout: httpListenerTimeout,
	}
	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			panic(err)
		}
	}()

	// Wait till the server is definitely accepting connections before we run any tests
	ctx, cancel := context.WithTimeout(context.Background(), httpListenerTimeout)
	defer cancel()
	ticker := time.NewTicker(time.Millisecond * 10)
	defer ticker.Stop()
	for {
		conn, err := (&net.Dialer{}).DialContext(ctx, "tcp", server.Addr)
		if err == nil {
			_ = conn.Close()
			return server, nil
		}
		select {
		case <-ctx.Done():
			_ = server.Close()
			return nil, fmt.Errorf("could not detect own listener at %s", server.Addr)
		case <-ticker.C:
		}
	}
}

// listenLocal binds to the loopback interface only.
func listenLocal(port int) (net.Listener, error) {
	return net.Listen("tcp", fmt.Sprintf("localhost:%d", port))
}
