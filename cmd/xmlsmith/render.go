package main

import (
	"github.com/scott-cotton/cli"

	xmlsmith "github.com/xmlsmith/go-xmlsmith"
)

func renderDocs(cfg *RenderConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Render.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachDoc(cfg.MainConfig, args, func(doc *xmlsmith.Document) error {
		return writeDoc(cfg.MainConfig, cc.Out, doc)
	})
}
