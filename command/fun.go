package command

import (
	"context"
	"math/rand/v2"
	"strings"

	"github.com/itc-kingsavage/savagebots/message"
)

// FunMenu lists the fun commands.
func FunMenu(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	var b strings.Builder
	b.WriteString("🎉 Fun commands:")
	for s := range std.ByCategory(Fun) {
		b.WriteString(" ")
		b.WriteString(env.Prefix)
		b.WriteString(s.Name)
	}
	return message.Reply("%s", b.String()), nil
}

// Truth asks a truth question.
func Truth(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	return message.Reply("🎯 Truth: %s", env.Content.Pick("truth")), nil
}

// Dare issues a dare.
func Dare(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	return message.Reply("😈 Dare: %s", env.Content.Pick("dare")), nil
}

// Trivia asks a trivia question.
func Trivia(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	return message.Reply("🧠 Trivia: %s", env.Content.Pick("trivia")), nil
}

// Joke tells a joke.
func Joke(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	return message.Reply("%s", env.Content.Pick("joke")), nil
}

// Meme serves a meme caption.
func Meme(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	return message.Reply("%s", env.Content.Pick("meme")), nil
}

// Fact shares a random fact.
func Fact(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	return message.Reply("💡 %s", env.Content.Pick("fact")), nil
}

// Quote shares an inspirational quote.
func Quote(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	return message.Reply("💬 %s", env.Content.Pick("quote")), nil
}

// EightBall consults the magic 8-ball.
func EightBall(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	if call.Args == "" {
		return message.Reply("🎱 Ask me a question first."), nil
	}
	return message.Reply("🎱 %s", env.Content.Pick("8ball")), nil
}

var gameWords = []string{"savanna", "mystery", "kingdom", "eagle", "crystal", "throne", "cipher"}

// WordGame scrambles a word to guess.
func WordGame(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	w := gameWords[rand.IntN(len(gameWords))]
	r := []rune(w)
	rand.Shuffle(len(r), func(i, j int) { r[i], r[j] = r[j], r[i] })
	return message.Reply("🔤 Unscramble this: %s", string(r)), nil
}
