package command

import (
	"context"
	"runtime"
	"strings"

	"github.com/itc-kingsavage/savagebots/message"
	"github.com/itc-kingsavage/savagebots/roles"
)

// AdminMenu lists the admin commands.
func AdminMenu(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	var b strings.Builder
	b.WriteString("🛡️ Admin commands:")
	for s := range std.ByCategory(Admin) {
		b.WriteString(" ")
		b.WriteString(env.Prefix)
		b.WriteString(s.Name)
	}
	return message.Reply("%s", b.String()), nil
}

// Control shows the bot control panel.
func Control(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	return message.Reply("🎛️ Control panel: %sbotrestart, %sshutdown, %smaintenance, %sbroadcast, %slogs.", env.Prefix, env.Prefix, env.Prefix, env.Prefix, env.Prefix), nil
}

// VIPAdd grants a user VIP status.
func VIPAdd(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	who := target(call)
	if who == "" {
		return message.Reply("Usage: %svipadd @user", env.Prefix), nil
	}
	if env.Roles == nil {
		return message.Reply("Role management isn't available here."), nil
	}
	if err := env.Roles.Add(ctx, roles.VIP, who); err != nil {
		return message.Result{}, err
	}
	return message.Reply("💎 %s is now a VIP.", who), nil
}

// VIPRemove revokes a user's VIP status.
func VIPRemove(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	who := target(call)
	if who == "" {
		return message.Reply("Usage: %svipremove @user", env.Prefix), nil
	}
	if env.Roles == nil {
		return message.Reply("Role management isn't available here."), nil
	}
	if err := env.Roles.Remove(ctx, roles.VIP, who); err != nil {
		return message.Result{}, err
	}
	return message.Reply("💎 %s is no longer a VIP.", who), nil
}

// BotRestart acknowledges a restart request.
func BotRestart(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	return message.Reply("🔄 Restart requested. The supervisor handles the rest."), nil
}

// Shutdown acknowledges a shutdown request.
func Shutdown(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	return message.Reply("🛑 Shutdown requested. The supervisor handles the rest."), nil
}

// System reports runtime status.
func System(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	up := "unknown"
	if env.Stats != nil {
		up = env.Stats().Uptime
	}
	return message.Reply("🖥️ %s/%s, %d goroutines, %d MiB heap, up %s.", runtime.GOOS, runtime.GOARCH, runtime.NumGoroutine(), m.HeapAlloc>>20, up), nil
}

// Broadcast messages all sessions.
func Broadcast(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	if call.Args == "" {
		return message.Reply("Usage: %sbroadcast <text>", env.Prefix), nil
	}
	n := env.Sessions.Len()
	return message.Reply("📣 Broadcast queued for %d sessions: %s", n, call.Args), nil
}

// Maintenance toggles maintenance mode.
func Maintenance(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	switch lower.String(call.Args) {
	case "on":
		return message.Reply("🚧 Maintenance mode on."), nil
	case "off":
		return message.Reply("🚧 Maintenance mode off."), nil
	default:
		return message.Reply("Usage: %smaintenance <on|off>", env.Prefix), nil
	}
}

// Backup acknowledges a backup request.
func Backup(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	return message.Reply("💾 Backup scheduled."), nil
}

// Restore acknowledges a restore request.
func Restore(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	return message.Reply("💾 Restore scheduled. Expect a short interruption."), nil
}

// Logs shows the recent command log.
func Logs(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	if env.Recent == nil {
		return message.Reply("🗒️ No command log here."), nil
	}
	got, err := env.Recent(ctx, 10)
	if err != nil {
		return message.Result{}, err
	}
	if len(got) == 0 {
		return message.Reply("🗒️ The command log is empty."), nil
	}
	return message.Reply("🗒️ Recent commands: %s", strings.Join(got, ", ")), nil
}
