// Package cli is the command-line front end. Each invocation handles one
// user event; the session pointer survives between invocations under the
// "currentUser" key of the same store.
package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/sakif/educonnect/internal/model"
	"github.com/sakif/educonnect/internal/service"
	"github.com/sakif/educonnect/internal/storage"
)

// ErrUsage is returned for unknown commands and bad flags. Usage has
// already been printed when it is returned.
var ErrUsage = errors.New("cli: usage")

// App runs commands against one store.
type App struct {
	auth      *service.AuthService
	groups    *service.GroupService
	mentors   *service.MentorService
	materials *service.MaterialService
	session   service.Session

	out    io.Writer
	errOut io.Writer
	in     *bufio.Reader

	// stdinIsTerminal reports whether passwords can be read without echo.
	stdinIsTerminal func() bool
}

// New builds an App on store. The session is persisted in the store's KV.
func New(store *storage.Store, logger *slog.Logger, in io.Reader, out, errOut io.Writer) *App {
	deps := service.Deps{Store: store, Logger: logger}
	return &App{
		auth:            service.NewAuthService(deps, ""),
		groups:          service.NewGroupService(deps),
		mentors:         service.NewMentorService(deps),
		materials:       service.NewMaterialService(deps),
		session:         storage.NewPersistentSession(store.KV()),
		out:             out,
		errOut:          errOut,
		in:              bufio.NewReader(in),
		stdinIsTerminal: func() bool { return isTerminal(os.Stdin) },
	}
}

const usage = `usage: educonnect [-db path] <command> [flags]

commands:
  register   -name N -email E [-password P] [-confirm P]
  login      -email E [-password P]
  logout
  whoami
  groups     [mine | available | create -name N -subject S [-description D] | join <id>]
  mentors    [available | register -subject S [-experience X] | connect [-subject S] <userID>]
  mentorings
  materials  [mine | share -title T -type file|link [-subject S] [-description D] [-link URL] [-file PATH]]
`

// Run executes one command. args excludes the program name and global flags.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.errOut, usage)
		return ErrUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "register":
		return a.register(ctx, rest)
	case "login":
		return a.login(ctx, rest)
	case "logout":
		return a.logout(ctx)
	case "whoami":
		return a.whoami(ctx)
	case "groups":
		return a.groupsCmd(ctx, rest)
	case "mentors":
		return a.mentorsCmd(ctx, rest)
	case "mentorings":
		return a.mentorings(ctx)
	case "materials":
		return a.materialsCmd(ctx, rest)
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	}

	fmt.Fprintf(a.errOut, "unknown command %q\n\n%s", cmd, usage)
	return ErrUsage
}

// requireUser resolves the session or prints a login hint.
func (a *App) requireUser(ctx context.Context) (*model.User, error) {
	nav := service.NavigatorFunc(func(string) {
		fmt.Fprintln(a.errOut, "Nenhuma sessão ativa. Entre com: educonnect login -email <e-mail>")
	})
	return a.auth.RequireAuth(ctx, a.session, nav)
}

// parseFlags parses args into fs. Bad flags and -h both stop the command
// with ErrUsage; the flag package has already printed the details.
func (a *App) parseFlags(fs *flag.FlagSet, args []string) error {
	fs.SetOutput(a.errOut)
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	return nil
}

// subcommand splits "groups create -name x" into ("create", ["-name","x"]).
// A leading flag or no argument at all selects def.
func subcommand(args []string, def string) (string, []string) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return def, args
	}
	return args[0], args[1:]
}
