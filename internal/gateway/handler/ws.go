package handler

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"amigurumi/internal/gateway/wire"
)

const (
	compileWSWriteWait = 10 * time.Second
	compileWSPongWait  = 60 * time.Second
	compileWSPingEvery = (compileWSPongWait * 9) / 10
)

var compileWSUpgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

type compileWSInbound struct {
	Type      string        `json:"type"`
	RequestID string        `json:"requestId,omitempty"`
	Profile   []wire.Anchor `json:"profile,omitempty"`
	Config    wire.Config   `json:"config,omitempty"`
}

type compileWSOutbound struct {
	Type       string                 `json:"type"`
	RequestID  string                 `json:"requestId,omitempty"`
	Pattern    *wire.Pattern          `json:"pattern,omitempty"`
	Validation *wire.ValidateResponse `json:"validation,omitempty"`
	Code       string                 `json:"code,omitempty"`
	Message    string                 `json:"message,omitempty"`
}

// HandleCompileWS serves the asynchronous compile channel: the caller
// sends compile or validate messages tagged with an opaque requestId
// and receives one response per request, in whatever order they
// finish. Each request compiles independently; a failure in one never
// disturbs another in flight.
func (h *Handler) HandleCompileWS(w http.ResponseWriter, r *http.Request) {
	conn, err := compileWSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	if err := conn.SetReadDeadline(time.Now().Add(compileWSPongWait)); err != nil {
		log.Printf("compile ws set read deadline failed: %v", err)
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(compileWSPongWait))
	})

	writeCh := make(chan compileWSOutbound, 32)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		ticker := time.NewTicker(compileWSPingEvery)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case out := <-writeCh:
				if err := conn.SetWriteDeadline(time.Now().Add(compileWSWriteWait)); err != nil {
					return
				}
				if err := conn.WriteJSON(out); err != nil {
					return
				}
			case <-ticker.C:
				if err := conn.SetWriteDeadline(time.Now().Add(compileWSWriteWait)); err != nil {
					return
				}
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()

	for {
		var in compileWSInbound
		if err := conn.ReadJSON(&in); err != nil {
			cancel()
			<-writerDone
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(compileWSPongWait))

		reqID := strings.TrimSpace(in.RequestID)
		switch strings.TrimSpace(in.Type) {
		case "compile":
			go h.compileWSRequest(ctx, writeCh, reqID, in)
		case "validate":
			go h.validateWSRequest(ctx, writeCh, reqID, in)
		default:
			pushCompileWS(ctx, writeCh, compileWSOutbound{
				Type:      "error",
				RequestID: reqID,
				Code:      "unknown_type",
				Message:   "message type must be compile or validate",
			})
		}
	}
}

func (h *Handler) compileWSRequest(ctx context.Context, writeCh chan<- compileWSOutbound, reqID string, in compileWSInbound) {
	p, err := h.svc.Compile(wire.CompileRequest{Profile: in.Profile, Config: in.Config})
	if err != nil {
		wireErr := wire.AsError(err)
		pushCompileWS(ctx, writeCh, compileWSOutbound{
			Type:      "error",
			RequestID: reqID,
			Code:      wireErr.Code,
			Message:   wireErr.Message,
		})
		return
	}
	pushCompileWS(ctx, writeCh, compileWSOutbound{
		Type:      "pattern",
		RequestID: reqID,
		Pattern:   &p,
	})
}

func (h *Handler) validateWSRequest(ctx context.Context, writeCh chan<- compileWSOutbound, reqID string, in compileWSInbound) {
	res := h.svc.Validate(wire.CompileRequest{Profile: in.Profile, Config: in.Config})
	pushCompileWS(ctx, writeCh, compileWSOutbound{
		Type:       "validation",
		RequestID:  reqID,
		Validation: &res,
	})
}

func pushCompileWS(ctx context.Context, writeCh chan<- compileWSOutbound, out compileWSOutbound) {
	select {
	case <-ctx.Done():
	case writeCh <- out:
	}
}
