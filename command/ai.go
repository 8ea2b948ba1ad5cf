package command

import (
	"context"
	"strings"

	"github.com/itc-kingsavage/savagebots/message"
)

// The assistant commands run against an external model service. Until
// one is wired up they answer from the front desk.

// Ask forwards a question to the assistant.
func Ask(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	if call.Args == "" {
		return message.Reply("Usage: %s%s <question>", env.Prefix, call.Name), nil
	}
	if err := collab(env); err != nil {
		return message.Result{}, err
	}
	return message.Reply("🤖 I heard: %q. The assistant is warming up; ask again in a moment.", call.Args), nil
}

// ImageAI requests a generated image.
func ImageAI(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	if call.Args == "" {
		return message.Reply("Usage: %simageai <description>", env.Prefix), nil
	}
	if err := collab(env); err != nil {
		return message.Result{}, err
	}
	return message.Reply("🎨 Sketching %q. Image delivery is offline right now.", call.Args), nil
}

// Summarize condenses text.
func Summarize(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	if call.Args == "" {
		return message.Reply("Usage: %ssummarize <text>", env.Prefix), nil
	}
	f := strings.Fields(call.Args)
	n := min(len(f), 8)
	return message.Reply("📄 In short: %s…", strings.Join(f[:n], " ")), nil
}

// Translate translates text.
func Translate(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	if call.Args == "" {
		return message.Reply("Usage: %stranslate <lang> <text>", env.Prefix), nil
	}
	return message.Reply("🌐 The translators are on break. Try again shortly."), nil
}

// Code asks the assistant for code.
func Code(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	if call.Args == "" {
		return message.Reply("Usage: %scode <what to write>", env.Prefix), nil
	}
	return message.Reply("💻 Code request noted: %q. The assistant is warming up.", call.Args), nil
}

// OCR reads text out of an image.
func OCR(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	return message.Reply("🔍 Send an image with the caption %socr and I'll read it once vision is back online.", env.Prefix), nil
}

// Sentiment judges the mood of text.
func Sentiment(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	if call.Args == "" {
		return message.Reply("Usage: %ssentiment <text>", env.Prefix), nil
	}
	// A crude lexicon until the model service is wired in.
	pos, neg := 0, 0
	for _, w := range strings.Fields(lower.String(call.Args)) {
		switch strings.Trim(w, ".,!?") {
		case "good", "great", "love", "happy", "nice", "best", "win":
			pos++
		case "bad", "hate", "sad", "angry", "worst", "lose", "awful":
			neg++
		}
	}
	switch {
	case pos > neg:
		return message.Reply("😊 Reads positive to me."), nil
	case neg > pos:
		return message.Reply("😟 Reads negative to me."), nil
	default:
		return message.Reply("😐 Reads neutral to me."), nil
	}
}
