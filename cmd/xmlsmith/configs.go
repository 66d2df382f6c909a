package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/xmlsmith/go-xmlsmith/render"
)

type MainConfig struct {
	Color bool   `cli:"name=color desc='render with color'"`
	Root  string `cli:"name=root aliases=r desc='element name for unnamed top-level collections and maps'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	if a == "-" {
		return nil, nil
	}
	cfg.Out = a
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) renderOpts(w io.Writer) []render.RenderOption {
	var res []render.RenderOption
	if cfg.Color {
		res = append(res, render.RenderColors(render.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, render.RenderColors(render.NewColors()))
	}
	return res
}

type RenderConfig struct {
	*MainConfig

	Render *cli.Command
}

type SelectConfig struct {
	*MainConfig

	Select *cli.Command
}

type RenameConfig struct {
	*MainConfig

	Attr bool `cli:"name=a aliases=attr desc='rename an attribute key instead of an entity'"`

	Rename *cli.Command
}

type RemoveConfig struct {
	*MainConfig

	Remove *cli.Command
}
