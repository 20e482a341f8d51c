package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/sakif/educonnect/internal/service"
)

func (a *App) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	var in service.RegisterInput
	fs.StringVar(&in.Name, "name", "", "full name")
	fs.StringVar(&in.Email, "email", "", "e-mail")
	fs.StringVar(&in.Password, "password", "", "password (prompted when omitted)")
	confirm := fs.String("confirm", "", "password confirmation")
	if err := a.parseFlags(fs, args); err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "confirm" {
			in.ConfirmPassword = confirm
		}
	})

	if in.Password == "" {
		pw, err := a.promptPassword("Senha")
		if err != nil {
			return err
		}
		again, err := a.promptPassword("Confirme a senha")
		if err != nil {
			return err
		}
		in.Password, in.ConfirmPassword = pw, &again
	}

	user, err := a.auth.Register(ctx, a.session, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Conta criada. Bem-vindo(a), %s!\n", user.Name)
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "e-mail")
	password := fs.String("password", "", "password (prompted when omitted)")
	if err := a.parseFlags(fs, args); err != nil {
		return err
	}

	if *password == "" {
		pw, err := a.promptPassword("Senha")
		if err != nil {
			return err
		}
		*password = pw
	}

	user, err := a.auth.Login(ctx, a.session, *email, *password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Olá, %s!\n", user.Name)
	return nil
}

func (a *App) logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx, a.session); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Sessão encerrada.")
	return nil
}

func (a *App) whoami(ctx context.Context) error {
	user, err := a.requireUser(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s <%s>\n", user.Name, user.Email)
	return nil
}
