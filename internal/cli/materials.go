package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sakif/educonnect/internal/model"
	"github.com/sakif/educonnect/internal/service"
)

func (a *App) materialsCmd(ctx context.Context, args []string) error {
	user, err := a.requireUser(ctx)
	if err != nil {
		return err
	}

	sub, rest := subcommand(args, "mine")
	switch sub {
	case "mine":
		materials, err := a.materials.ListUserMaterials(ctx, user)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(materials))
		for _, m := range materials {
			rows = append(rows, []string{m.Title, m.Subject, string(m.Type), materialTarget(m)})
		}
		printTable(a.out, "Você ainda não compartilhou materiais.", []string{"TÍTULO", "MATÉRIA", "TIPO", "CONTEÚDO"}, rows)
		return nil

	case "share":
		fs := flag.NewFlagSet("materials share", flag.ContinueOnError)
		var in service.MaterialInput
		var path string
		fs.StringVar(&in.Title, "title", "", "title")
		fs.StringVar(&in.Subject, "subject", "", "subject")
		fs.StringVar(&in.Type, "type", string(model.MaterialLink), "file or link")
		fs.StringVar(&in.Description, "description", "", "description")
		fs.StringVar(&in.Link, "link", "", "URL, for type link")
		fs.StringVar(&path, "file", "", "local file, for type file (only its name and size are recorded)")
		if err := a.parseFlags(fs, rest); err != nil {
			return err
		}

		if path != "" {
			info, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("cli: reading %s: %w", path, err)
			}
			in.FileName = filepath.Base(path)
			in.FileSize = info.Size()
		}

		material, err := a.materials.ShareMaterial(ctx, user, in)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Material %q compartilhado.\n", material.Title)
		return nil
	}

	fmt.Fprintf(a.errOut, "unknown materials command %q\n\n%s", sub, usage)
	return ErrUsage
}

func materialTarget(m model.Material) string {
	if m.Type == model.MaterialLink {
		return m.Link
	}
	if m.FileName == "" || m.FileSize == nil {
		return "-"
	}
	return fmt.Sprintf("%s (%d bytes)", m.FileName, *m.FileSize)
}
