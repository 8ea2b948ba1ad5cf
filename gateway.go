package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/go-json-experiment/json"
	"github.com/google/uuid"

	"github.com/itc-kingsavage/savagebots/message"
)

// frame is a single message on the gateway WebSocket, in either
// direction. The Type field selects which other fields are meaningful:
//
//   - "message": Bot and Message, sent by the connector for each chat
//     message the named bot should see.
//   - "reply": Bot, To, ReplyTo, and Text, sent by the fleet when a bot
//     responds with text.
//   - "reaction": Bot, To, ReplyTo, and Emoji, sent by the fleet when a
//     bot reacts to a message.
//   - "error": Error, sent by the fleet when a frame can't be handled.
type frame struct {
	Type    string            `json:"type"`
	Bot     string            `json:"bot,omitempty"`
	Message *message.Received `json:"message,omitempty"`
	To      string            `json:"to,omitempty"`
	ReplyTo string            `json:"replyTo,omitempty"`
	Text    string            `json:"text,omitempty"`
	Emoji   string            `json:"emoji,omitempty"`
	Error   string            `json:"error,omitempty"`
}

// gateway serves the WebSocket endpoint that chat connectors use to
// feed messages to the fleet and receive responses. Responses for a
// message go back on the connection that delivered it.
func (m *Manager) gateway(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slog.With(slog.String("api", "gateway"), slog.Any("trace", uuid.New()))
	log.InfoContext(ctx, "handle", slog.String("route", r.Pattern), slog.String("remote", r.RemoteAddr))
	defer log.InfoContext(ctx, "done")
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.ErrorContext(ctx, "couldn't accept gateway connection", slog.Any("err", err))
		return
	}
	defer conn.CloseNow()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	// All writes happen on one goroutine so concurrent dispatch results
	// can't interleave frames.
	send := make(chan []byte, 8)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case b := <-send:
				if err := conn.Write(ctx, websocket.MessageText, b); err != nil {
					log.ErrorContext(ctx, "gateway write failed", slog.Any("err", err))
					cancel()
					return
				}
			}
		}
	}()
	reject := func(msg string) {
		b, err := json.Marshal(&frame{Type: "error", Error: msg})
		if err != nil {
			panic(err)
		}
		select {
		case <-ctx.Done():
		case send <- b:
		}
	}
	for {
		_, b, err := conn.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
				return
			}
			log.InfoContext(ctx, "gateway closed", slog.Any("err", err))
			return
		}
		var f frame
		if err := json.Unmarshal(b, &f); err != nil {
			log.WarnContext(ctx, "bad gateway frame", slog.Any("err", err))
			reject("couldn't decode frame")
			continue
		}
		if f.Type != "message" {
			log.WarnContext(ctx, "unexpected gateway frame", slog.String("type", f.Type))
			reject("unexpected frame type " + f.Type)
			continue
		}
		if f.Message == nil {
			reject("message frame with no message")
			continue
		}
		bot, msg := f.Bot, f.Message
		respond := func(res message.Result) {
			u := frame{
				Bot:     bot,
				To:      msg.From,
				ReplyTo: msg.ID,
			}
			switch res.Kind {
			case message.Text:
				u.Type = "reply"
				u.Text = res.Text
			case message.Reaction:
				u.Type = "reaction"
				u.Emoji = res.Emoji
			default:
				return
			}
			b, err := json.Marshal(&u)
			if err != nil {
				panic(err)
			}
			select {
			case <-ctx.Done():
			case send <- b:
			}
		}
		if err := m.Dispatch(ctx, bot, msg, respond); err != nil {
			log.WarnContext(ctx, "gateway dispatch failed", slog.String("bot", bot), slog.Any("err", err))
			reject(err.Error())
		}
	}
}
