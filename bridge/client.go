package bridge

import (
	"context"
	"strings"

	"connectrpc.com/connect"
	"github.com/tailored-agentic-units/ymvc/event"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// Client posts notes to a remote bridge Server.
type Client struct {
	app   *connect.Client[structpb.Struct, emptypb.Empty]
	model *connect.Client[structpb.Struct, emptypb.Empty]
}

// NewClient creates a Client for the bridge served at baseURL.
func NewClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *Client {
	base := strings.TrimRight(baseURL, "/")
	return &Client{
		app:   connect.NewClient[structpb.Struct, emptypb.Empty](httpClient, base+NotifyAppProcedure, opts...),
		model: connect.NewClient[structpb.Struct, emptypb.Empty](httpClient, base+NotifyModelProcedure, opts...),
	}
}

// NotifyApp publishes a note on the remote facade's app observer.
func (c *Client) NotifyApp(ctx context.Context, name string, data any, uid string, extras ...event.Extra) error {
	return call(ctx, c.app, name, data, uid, extras)
}

// NotifyModel publishes a note on the remote facade's model observer.
func (c *Client) NotifyModel(ctx context.Context, name string, data any, uid string, extras ...event.Extra) error {
	return call(ctx, c.model, name, data, uid, extras)
}

func call(ctx context.Context, client *connect.Client[structpb.Struct, emptypb.Empty], name string, data any, uid string, extras []event.Extra) error {
	msg, err := EncodeNote(name, data, uid, extras...)
	if err != nil {
		return err
	}
	_, err = client.CallUnary(ctx, connect.NewRequest(msg))
	return err
}
