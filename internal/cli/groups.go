package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/sakif/educonnect/internal/service"
)

func (a *App) groupsCmd(ctx context.Context, args []string) error {
	user, err := a.requireUser(ctx)
	if err != nil {
		return err
	}

	sub, rest := subcommand(args, "mine")
	switch sub {
	case "mine":
		groups, err := a.groups.ListUserGroups(ctx, user)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(groups))
		for _, g := range groups {
			rows = append(rows, []string{g.ID, g.Name, g.Subject, strconv.Itoa(len(g.Members))})
		}
		printTable(a.out, "Você ainda não participa de nenhum grupo.", []string{"ID", "GRUPO", "MATÉRIA", "MEMBROS"}, rows)
		return nil

	case "available":
		groups, err := a.groups.ListAvailableGroups(ctx, user)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(groups))
		for _, g := range groups {
			rows = append(rows, []string{g.ID, g.Name, g.Subject, g.CreatorName, strconv.Itoa(g.MemberCount)})
		}
		printTable(a.out, "Nenhum grupo disponível.", []string{"ID", "GRUPO", "MATÉRIA", "CRIADOR", "MEMBROS"}, rows)
		return nil

	case "create":
		fs := flag.NewFlagSet("groups create", flag.ContinueOnError)
		var in service.GroupInput
		fs.StringVar(&in.Name, "name", "", "group name")
		fs.StringVar(&in.Subject, "subject", "", "subject")
		fs.StringVar(&in.Description, "description", "", "description")
		if err := a.parseFlags(fs, rest); err != nil {
			return err
		}
		group, err := a.groups.CreateGroup(ctx, user, in)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Grupo %q criado (%s).\n", group.Name, group.ID)
		return nil

	case "join":
		if len(rest) != 1 {
			fmt.Fprint(a.errOut, usage)
			return ErrUsage
		}
		joined, err := a.groups.JoinGroup(ctx, user, rest[0])
		if err != nil {
			return err
		}
		if joined {
			fmt.Fprintln(a.out, "Você entrou no grupo.")
		} else {
			fmt.Fprintln(a.out, "Nada a fazer: grupo inexistente ou você já é membro.")
		}
		return nil
	}

	fmt.Fprintf(a.errOut, "unknown groups command %q\n\n%s", sub, usage)
	return ErrUsage
}
