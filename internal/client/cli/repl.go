package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// errUsage marks bad command arguments.
var errUsage = errors.New("usage")

// command is one REPL verb. Commands with auth set are hidden from help and
// refused while no session is active.
type command struct {
	usage string
	auth  bool
	run   func(ctx context.Context, args []string) error
}

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	commands() map[string]command
}

// runREPL starts a simple read–eval–print loop for the LearnHub CLI.
//
// It reads a line from reader, parses the first token as the command and
// dispatches it with the remaining tokens as arguments. Unknown commands are
// reported back to the user. The loop exits on EOF or when the user types
// "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers print their
// own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	cmds := a.commands()
	for {
		printlnFn(fmt.Sprintf("learnhub %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		eof := err != nil

		parts := strings.Fields(line)
		if len(parts) == 0 {
			if eof {
				return
			}
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "help":
			printlnFn("Available commands: " + strings.Join(available(cmds, a.isLoggedIn()), ", "))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			cmd, ok := cmds[name]
			switch {
			case !ok:
				printlnFn("Unknown command:", name)
			case cmd.auth && !a.isLoggedIn():
				printlnFn("Please login first")
			default:
				if err := cmd.run(ctx, args); errors.Is(err, errUsage) {
					printlnFn("Usage:", cmd.usage)
				}
			}
		}

		if eof {
			return
		}
	}
}

func available(cmds map[string]command, loggedIn bool) []string {
	names := make([]string, 0, len(cmds)+2)
	for name, c := range cmds {
		if c.auth && !loggedIn {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return append(names, "help", "exit")
}

func (a *App) commands() map[string]command {
	return map[string]command{
		"login":       {usage: "login [redirect]", run: a.Login},
		"signup":      {usage: "signup", run: a.Signup},
		"google":      {usage: "google [redirect]", run: a.Google},
		"forgot":      {usage: "forgot", run: a.Forgot},
		"logout":      {usage: "logout", auth: true, run: a.Logout},
		"whoami":      {usage: "whoami", run: a.Whoami},
		"refresh":     {usage: "refresh", auth: true, run: a.Refresh},
		"dashboard":   {usage: "dashboard", run: a.Dashboard},
		"courses":     {usage: "courses", run: a.Courses},
		"course":      {usage: "course <id>", run: a.Course},
		"enroll":      {usage: "enroll <courseId>", auth: true, run: a.Enroll},
		"lessons":     {usage: "lessons <courseId>", auth: true, run: a.Lessons},
		"complete":    {usage: "complete <courseId> <lessonId>", auth: true, run: a.Complete},
		"quiz":        {usage: "quiz <lessonId>", auth: true, run: a.Quiz},
		"leaderboard": {usage: "leaderboard [courseId]", run: a.Leaderboard},
		"rank":        {usage: "rank <courseId>", auth: true, run: a.Rank},
		"profile":     {usage: "profile [edit]", auth: true, run: a.Profile},
		"passwd":      {usage: "passwd", auth: true, run: a.ChangePassword},
		"badges":      {usage: "badges", auth: true, run: a.Badges},
		"enrollments": {usage: "enrollments", auth: true, run: a.Enrollments},
		"payments":    {usage: "payments", auth: true, run: a.Payments},
		"live":        {usage: "live [seconds]", auth: true, run: a.Live},
	}
}
