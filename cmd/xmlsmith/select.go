package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	xmlsmith "github.com/xmlsmith/go-xmlsmith"
	"github.com/xmlsmith/go-xmlsmith/render"
)

func selectEntities(cfg *SelectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Select.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: select requires one argument, a name path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path %q", cli.ErrUsage, path)
	}
	args = args[1:]
	return eachDoc(cfg.MainConfig, args, func(doc *xmlsmith.Document) error {
		for _, e := range doc.Select(path) {
			if err := render.Encode(e, cc.Out, cfg.renderOpts(cc.Out)...); err != nil {
				return err
			}
			if _, err := cc.Out.Write([]byte("\n")); err != nil {
				return err
			}
		}
		return nil
	})
}
