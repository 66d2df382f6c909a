package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	xmlsmith "github.com/xmlsmith/go-xmlsmith"
	"github.com/xmlsmith/go-xmlsmith/objmap"
)

func xmlsmithMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// loadDoc reads one YAML document from arg ("-" means stdin) and maps
// it to an XML document.
func loadDoc(cfg *MainConfig, arg string) (*xmlsmith.Document, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	in, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", arg, err)
	}
	var v any
	if err := yaml.Unmarshal(in, &v); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	root := cfg.Root
	if root == "" {
		root = "document"
	}
	doc, err := xmlsmith.MapDocument(v, objmap.RootName(root))
	if err != nil {
		return nil, fmt.Errorf("error mapping %s: %w", arg, err)
	}
	return doc, nil
}

// eachDoc maps every argument (stdin when none are given) and hands
// the document to fn.
func eachDoc(cfg *MainConfig, args []string, fn func(*xmlsmith.Document) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		doc, err := loadDoc(cfg, arg)
		if err != nil {
			return err
		}
		if err := fn(doc); err != nil {
			return fmt.Errorf("error processing %s: %w", arg, err)
		}
	}
	return nil
}

func writeDoc(cfg *MainConfig, w io.Writer, doc *xmlsmith.Document) error {
	if err := doc.Encode(w, cfg.renderOpts(w)...); err != nil {
		return err
	}
	_, err := w.Write([]byte("\n"))
	return err
}
