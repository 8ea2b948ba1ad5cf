package command

import (
	"context"
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/itc-kingsavage/savagebots/message"
)

// ExtraMenu lists the extra commands.
func ExtraMenu(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	var b strings.Builder
	b.WriteString("✨ Extra commands:")
	for s := range std.ByCategory(Extra) {
		b.WriteString(" ")
		b.WriteString(env.Prefix)
		b.WriteString(s.Name)
	}
	return message.Reply("%s", b.String()), nil
}

// TTS requests text to speech.
func TTS(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	if call.Args == "" {
		return message.Reply("Usage: %stts <text>", env.Prefix), nil
	}
	return message.Reply("🔊 Voicing %q once audio delivery is back online.", call.Args), nil
}

// Timer acknowledges a timer request.
func Timer(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	n, err := strconv.Atoi(call.Args)
	if err != nil || n <= 0 {
		return message.Reply("Usage: %stimer <seconds>", env.Prefix), nil
	}
	return message.Reply("⏱️ Timer running for %d seconds.", n), nil
}

// Encrypt encodes text.
func Encrypt(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	if call.Args == "" {
		return message.Reply("Usage: %sencrypt <text>", env.Prefix), nil
	}
	return message.Reply("🔐 %s", base64.StdEncoding.EncodeToString([]byte(call.Args))), nil
}

// Decode decodes text produced by Encrypt.
func Decode(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	if call.Args == "" {
		return message.Reply("Usage: %sdecode <text>", env.Prefix), nil
	}
	b, err := base64.StdEncoding.DecodeString(call.Args)
	if err != nil {
		return message.Reply("That isn't something I encrypted."), nil
	}
	return message.Reply("🔓 %s", string(b)), nil
}
