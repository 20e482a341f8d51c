package cli

import (
	"context"
	"flag"
	"fmt"
)

func (a *App) mentorsCmd(ctx context.Context, args []string) error {
	user, err := a.requireUser(ctx)
	if err != nil {
		return err
	}

	sub, rest := subcommand(args, "available")
	switch sub {
	case "available":
		mentors, err := a.mentors.ListAvailableMentors(ctx, user)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(mentors))
		for _, m := range mentors {
			rows = append(rows, []string{m.Profile.UserID, m.Name, m.Profile.Subject, m.Profile.Experience})
		}
		printTable(a.out, "Nenhum mentor disponível.", []string{"USUÁRIO", "MENTOR", "MATÉRIA", "EXPERIÊNCIA"}, rows)
		return nil

	case "register":
		fs := flag.NewFlagSet("mentors register", flag.ContinueOnError)
		subject := fs.String("subject", "", "subject you can mentor")
		experience := fs.String("experience", "", "experience, free text")
		if err := a.parseFlags(fs, rest); err != nil {
			return err
		}
		profile, err := a.mentors.RegisterAsMentor(ctx, user, *subject, *experience)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Você agora é mentor(a) de %s.\n", profile.Subject)
		return nil

	case "connect":
		fs := flag.NewFlagSet("mentors connect", flag.ContinueOnError)
		subject := fs.String("subject", "", "subject of the mentoring")
		if err := a.parseFlags(fs, rest); err != nil {
			return err
		}
		if fs.NArg() != 1 {
			fmt.Fprint(a.errOut, usage)
			return ErrUsage
		}
		if _, err := a.mentors.ConnectWithMentor(ctx, user, fs.Arg(0), *subject); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Mentoria criada.")
		return nil
	}

	fmt.Fprintf(a.errOut, "unknown mentors command %q\n\n%s", sub, usage)
	return ErrUsage
}

func (a *App) mentorings(ctx context.Context) error {
	user, err := a.requireUser(ctx)
	if err != nil {
		return err
	}
	views, err := a.mentors.ListUserMentorings(ctx, user)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(views))
	for _, v := range views {
		rows = append(rows, []string{string(v.Role), v.OtherPartyName, v.Subject})
	}
	printTable(a.out, "Nenhuma mentoria.", []string{"PAPEL", "COM", "MATÉRIA"}, rows)
	return nil
}
