package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "xmlsmith").
		WithSynopsis("xmlsmith [opts] command [opts]").
		WithDescription("xmlsmith maps YAML object documents to XML and edits the result.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return xmlsmithMain(cfg, cc, args)
		}).
		WithSubs(
			RenderCommand(cfg),
			SelectCommand(cfg),
			RenameCommand(cfg),
			RemoveCommand(cfg))
}

func RenderCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RenderConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Render, "render").
		WithAliases("re").
		WithSynopsis("render [files]").
		WithDescription("render YAML object documents as XML").
		WithRun(func(cc *cli.Context, args []string) error {
			return renderDocs(cfg, cc, args)
		})
}

func SelectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SelectConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Select, "select").
		WithAliases("s", "sel").
		WithSynopsis("select <path> [files]").
		WithDescription("select entities matching a name path and render them").
		WithRun(func(cc *cli.Context, args []string) error {
			return selectEntities(cfg, cc, args)
		})
}

func RenameCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RenameConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Rename, "rename").
		WithAliases("rn").
		WithSynopsis("rename <old> <new> [files] or rename -a <entity> <old> <new> [files]").
		WithDescription("rename entities, or attribute keys with -a").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return rename(cfg, cc, args)
		})
}

func RemoveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RemoveConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Remove, "remove").
		WithAliases("rm").
		WithSynopsis("remove <name> [files]").
		WithDescription("remove every entity with the given name").
		WithRun(func(cc *cli.Context, args []string) error {
			return remove(cfg, cc, args)
		})
}
