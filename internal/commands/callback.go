package commands

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

const (
	// First port tried for the OAuth redirect, then the next few.
	callbackStartPort    = 8085
	callbackPortAttempts = 5

	callbackShutdownTimeout = 5 * time.Second
)

var errLoginCancelled = errors.New("cancelled")

const callbackPage = "<html><body><h1>Authentication successful</h1><p>You may close this window.</p></body></html>"

// callbackServer receives the authorization code on a loopback redirect.
type callbackServer struct {
	port   int
	state  string
	server *http.Server
	codeCh chan string
	errCh  chan error
}

// listenForCallback binds the first free port from callbackStartPort and
// starts serving /callback.
func listenForCallback() (*callbackServer, error) {
	var listener net.Listener
	var port int
	for i := range callbackPortAttempts {
		l, err := net.Listen("tcp", fmt.Sprintf("localhost:%d", callbackStartPort+i))
		if err == nil {
			listener, port = l, callbackStartPort+i
			break
		}
	}
	if listener == nil {
		return nil, errors.New("could not bind to local port for OAuth callback")
	}

	cb := &callbackServer{
		port:   port,
		state:  oauth2.GenerateVerifier(),
		codeCh: make(chan string, 1),
		errCh:  make(chan error, 1),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/callback", cb.handle)
	cb.server = &http.Server{Handler: mux}

	go func() {
		if err := cb.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			cb.report(err)
		}
	}()
	return cb, nil
}

func (cb *callbackServer) redirectURL() string {
	return fmt.Sprintf("http://localhost:%d/callback", cb.port)
}

func (cb *callbackServer) handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if query.Get("state") != cb.state {
		http.Error(w, "State mismatch", http.StatusBadRequest)
		cb.report(errors.New("oauth state mismatch"))
		return
	}
	code := query.Get("code")
	if code == "" {
		http.Error(w, "No code in callback", http.StatusBadRequest)
		cb.report(errors.New("no code in callback"))
		return
	}

	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, callbackPage)
	select {
	case cb.codeCh <- code:
	default:
	}
}

// report keeps the first error and drops the rest.
func (cb *callbackServer) report(err error) {
	select {
	case cb.errCh <- err:
	default:
	}
}

// wait blocks until a code arrives, the callback fails, timeout passes or
// ctx is done.
func (cb *callbackServer) wait(ctx context.Context, timeout time.Duration) (string, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case code := <-cb.codeCh:
		return code, nil
	case err := <-cb.errCh:
		return "", err
	case <-timer.C:
		return "", errors.New("oauth callback timed out")
	case <-ctx.Done():
		return "", errLoginCancelled
	}
}

func (cb *callbackServer) close() {
	ctx, cancel := context.WithTimeout(context.Background(), callbackShutdownTimeout)
	defer cancel()
	_ = cb.server.Shutdown(ctx)
}
