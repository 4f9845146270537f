package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	konghcl "github.com/alecthomas/kong-hcl/v2"

	"github.com/squareup/rowply/apply"
	"github.com/squareup/rowply/log"
	"github.com/squareup/rowply/metrics/prometheus"
	"github.com/squareup/rowply/parser"
	"github.com/squareup/rowply/shell"
)

var cli struct {
	Config kong.ConfigFlag `help:"Path to config file" type:"existingfile"`
	Log    log.Config      `embed:"" prefix:"log-"`

	Apply ApplyCmd `cmd:"" help:"Apply a formula row-wise to a CSV table and print the result."`
	Shell ShellCmd `cmd:"" help:"Start an interactive shell."`
}

func main() {
	kctx := kong.Parse(&cli, kong.Configuration(konghcl.Loader))
	err := cli.Log.Configure()
	kctx.FatalIfErrorf(err)
	err = kctx.Run()
	kctx.FatalIfErrorf(err)
}

type ApplyCmd struct {
	File     string `arg:"" help:"CSV file with a header record." type:"existingfile"`
	Formula  string `arg:"" help:"Formula to apply to each row, e.g. 'sum' or '{total: sum, hot: any}'."`
	Strategy string `help:"Row materialization strategy." enum:"coerce,zip" default:"coerce"`
}

func (c *ApplyCmd) Run() error {
	table, err := shell.LoadCSV(c.File)
	if err != nil {
		return err
	}
	formula, err := parser.Parse(c.Formula)
	if err != nil {
		return err
	}
	fn, err := formula.RowFunc()
	if err != nil {
		return err
	}
	strategy, err := apply.ParseStrategy(c.Strategy)
	if err != nil {
		return err
	}
	res, err := apply.Apply(table.Rows, table.ColNames, fn, nil, strategy)
	if err != nil {
		return err
	}
	lines, err := shell.RenderResult(res)
	if err != nil {
		return err
	}
	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}

type ShellCmd struct {
	VI          bool   `help:"Enable VI mode."`
	File        string `arg:"" optional:"" help:"CSV file to load on startup." type:"existingfile"`
	MetricsAddr string `help:"If set, serve prometheus metrics on this address."`
}

func (c *ShellCmd) Run() error {
	sh := shell.NewShell(c.VI)
	if c.MetricsAddr != "" {
		factory := prometheus.NewFactory(c.MetricsAddr)
		if err := factory.Start(); err != nil {
			return err
		}
		defer func() {
			_ = factory.Stop()
		}()
		if err := sh.SetMetricsFactory(factory); err != nil {
			return err
		}
	}
	if c.File != "" {
		if err := sh.Load(c.File); err != nil {
			return err
		}
	}
	return sh.Run()
}
