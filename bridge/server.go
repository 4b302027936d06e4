// Package bridge carries notes into a Facade from other processes. Notes
// travel as google.protobuf.Struct messages over connect unary calls; the
// server decodes each one and publishes it on the facade's app or model
// observer exactly as an in-process NotifyApp or NotifyModel call would.
package bridge

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"connectrpc.com/connect"
	"github.com/tailored-agentic-units/ymvc/event"
	"github.com/tailored-agentic-units/ymvc/mvc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// Procedure paths served by the bridge.
const (
	ServiceName          = "ymvc.bridge.v1.NoteService"
	NotifyAppProcedure   = "/" + ServiceName + "/NotifyApp"
	NotifyModelProcedure = "/" + ServiceName + "/NotifyModel"
)

// Server publishes incoming notes on a Facade. Notes are dispatched one at a
// time so handlers never see concurrent notifications from the bridge.
type Server struct {
	facade *mvc.Facade
	logger *slog.Logger
	mu     sync.Mutex
}

// NewServer creates a Server that publishes on f.
func NewServer(f *mvc.Facade, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{facade: f, logger: logger}
}

// Handler returns the service path prefix and an http.Handler serving both
// notify procedures, ready to mount on a mux.
func (s *Server) Handler(opts ...connect.HandlerOption) (string, http.Handler) {
	app := connect.NewUnaryHandler(NotifyAppProcedure, s.NotifyApp, opts...)
	model := connect.NewUnaryHandler(NotifyModelProcedure, s.NotifyModel, opts...)

	return "/" + ServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case NotifyAppProcedure:
			app.ServeHTTP(w, r)
		case NotifyModelProcedure:
			model.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// NotifyApp publishes the request note on the app observer.
func (s *Server) NotifyApp(ctx context.Context, req *connect.Request[structpb.Struct]) (*connect.Response[emptypb.Empty], error) {
	return s.dispatch(ctx, "app", req.Msg, s.facade.NotifyApp)
}

// NotifyModel publishes the request note on the model observer.
func (s *Server) NotifyModel(ctx context.Context, req *connect.Request[structpb.Struct]) (*connect.Response[emptypb.Empty], error) {
	return s.dispatch(ctx, "model", req.Msg, s.facade.NotifyModel)
}

type notifyFunc func(name string, data any, uid string, extras ...event.Extra) error

func (s *Server) dispatch(ctx context.Context, channel string, msg *structpb.Struct, notify notifyFunc) (*connect.Response[emptypb.Empty], error) {
	note, err := DecodeNote(msg)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, connect.NewError(connect.CodeCanceled, err)
	}

	s.mu.Lock()
	err = notify(note.EventName, note.Data, note.UID, note.Extras...)
	s.mu.Unlock()

	if err != nil {
		s.logger.WarnContext(ctx, "bridge notify failed",
			slog.String("channel", channel),
			slog.String("event", note.EventName),
			slog.String("error", err.Error()),
		)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.DebugContext(ctx, "bridge note delivered",
		slog.String("channel", channel),
		slog.String("event", note.EventName),
		slog.String("uid", note.UID),
	)
	return connect.NewResponse(&emptypb.Empty{}), nil
}
