package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Help(ctx context.Context) error
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	SetMode(ctx context.Context, args []string) error
	SetPrompt(ctx context.Context, args []string) error
	SetNegative(ctx context.Context, args []string) error
	SetRatio(ctx context.Context, args []string) error
	SetStyle(ctx context.Context, args []string) error
	Generate(ctx context.Context) error
	Load(ctx context.Context, args []string) error
	Enhance(ctx context.Context) error
	Upscale(ctx context.Context) error
	Save(ctx context.Context, args []string) error
	Export(ctx context.Context) error
	History(ctx context.Context) error
	Use(ctx context.Context, args []string) error
	Theme(ctx context.Context, args []string) error
	Lang(ctx context.Context, args []string) error
	Status(ctx context.Context) error
	Unknown(cmd string)
	Report(err error)
}

// runREPL starts a simple read–eval–print loop for the wallpaper CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF, on context
// cancellation or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	help                   show available commands
//	signup | register      create an account and log in
//	login | logout         switch identity
//	mode <generate|enhance>
//	prompt <text>          set the prompt
//	negative [text]        set or clear the negative prompt
//	ratio <16:9|9:16|1:1|4:3>
//	style <name>
//	generate | g           generate a wallpaper
//	load <file>            load a source image for enhance mode
//	enhance | upscale
//	save [dir] | export
//	history | h            list saved prompts
//	use <n>                reuse history entry n
//	theme [name] | lang [code]
//	status
//	exit | quit
//
// Errors returned by command handlers are passed to Report, which prints them;
// the loop itself never stops on a command error.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("wp %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		var cmdErr error
		switch cmd {
		case "help", "?":
			cmdErr = a.Help(ctx)
		case "signup", "register":
			cmdErr = a.Signup(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "mode":
			cmdErr = a.SetMode(ctx, args)
		case "prompt", "p":
			cmdErr = a.SetPrompt(ctx, args)
		case "negative", "neg":
			cmdErr = a.SetNegative(ctx, args)
		case "ratio":
			cmdErr = a.SetRatio(ctx, args)
		case "style":
			cmdErr = a.SetStyle(ctx, args)
		case "generate", "g":
			cmdErr = a.Generate(ctx)
		case "load":
			cmdErr = a.Load(ctx, args)
		case "enhance":
			cmdErr = a.Enhance(ctx)
		case "upscale":
			cmdErr = a.Upscale(ctx)
		case "save":
			cmdErr = a.Save(ctx, args)
		case "export":
			cmdErr = a.Export(ctx)
		case "history", "h":
			cmdErr = a.History(ctx)
		case "use":
			cmdErr = a.Use(ctx, args)
		case "theme":
			cmdErr = a.Theme(ctx, args)
		case "lang", "language":
			cmdErr = a.Lang(ctx, args)
		case "status":
			cmdErr = a.Status(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			a.Unknown(cmd)
		}

		if cmdErr != nil {
			a.Report(cmdErr)
		}
	}
}
