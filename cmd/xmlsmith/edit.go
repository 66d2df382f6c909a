package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	xmlsmith "github.com/xmlsmith/go-xmlsmith"
)

func rename(cfg *RenameConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rename.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Attr {
		if len(args) < 3 {
			return fmt.Errorf("%w: rename -a requires <entity> <old> <new>", cli.ErrUsage)
		}
		entityName, oldKey, newKey := args[0], args[1], args[2]
		return eachDoc(cfg.MainConfig, args[3:], func(doc *xmlsmith.Document) error {
			if err := doc.RenameAttribute(entityName, oldKey, newKey); err != nil {
				return err
			}
			return writeDoc(cfg.MainConfig, cc.Out, doc)
		})
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: rename requires <old> <new>", cli.ErrUsage)
	}
	oldName, newName := args[0], args[1]
	return eachDoc(cfg.MainConfig, args[2:], func(doc *xmlsmith.Document) error {
		if err := doc.RenameEntity(oldName, newName); err != nil {
			return err
		}
		return writeDoc(cfg.MainConfig, cc.Out, doc)
	})
}

func remove(cfg *RemoveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Remove.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: remove requires one argument, an entity name", cli.ErrUsage)
	}
	name := args[0]
	return eachDoc(cfg.MainConfig, args[1:], func(doc *xmlsmith.Document) error {
		doc.RemoveEntity(name)
		return writeDoc(cfg.MainConfig, cc.Out, doc)
	})
}
