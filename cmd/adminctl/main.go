package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/goliatone/go-admin-console/components/admin"
	"github.com/goliatone/go-admin-console/components/collection"
	"github.com/goliatone/go-admin-console/pkg/telemetry"
)

// Globals are shared by every subcommand.
type Globals struct {
	LogLevel  string `name:"log-level" env:"ADMIN_LOG_LEVEL" default:"info" enum:"debug,info,warn,error" help:"Log level."`
	LogFormat string `name:"log-format" env:"ADMIN_LOG_FORMAT" default:"json" enum:"json,console" help:"Log encoding."`
	SeedPath  string `name:"seed" env:"ADMIN_SEED_PATH" type:"path" help:"YAML seed document (defaults to the embedded sample records)."`
	IDPolicy  string `name:"id-policy" env:"ADMIN_ID_POLICY" default:"length" enum:"length,monotonic" help:"Identifier assignment for new records."`
}

type cli struct {
	Globals

	Serve  serveCmd  `cmd:"" help:"Serve the admin console API."`
	Export exportCmd `cmd:"" help:"Export a seeded collection as csv or xlsx."`
	Report reportCmd `cmd:"" help:"Write the sales report chart, workbook or printable page."`
	Seed   seedCmd   `cmd:"" help:"Seed document utilities."`
}

func main() {
	_ = godotenv.Load()

	var app cli
	ctx := kong.Parse(&app,
		kong.Name("adminctl"),
		kong.Description("Management console for products, orders and users."),
		kong.UsageOnError(),
		kong.Bind(&app.Globals),
		kong.BindTo(context.Background(), (*context.Context)(nil)),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

func (g *Globals) logger() (*zap.SugaredLogger, error) {
	logger, err := telemetry.NewLogger(g.LogLevel, g.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("adminctl: build logger: %w", err)
	}
	return logger, nil
}

// workspaceOptions resolves the seed and id policy shared by serve and
// export.
func (g *Globals) workspaceOptions(rec admin.Telemetry) (admin.Options, error) {
	policy, ok := collection.ParseIDPolicy(g.IDPolicy)
	if !ok {
		return admin.Options{}, fmt.Errorf("adminctl: unknown id policy %q", g.IDPolicy)
	}
	opts := admin.Options{IDPolicy: policy, Telemetry: rec}
	if g.SeedPath != "" {
		seed, err := admin.LoadSeedFile(g.SeedPath)
		if err != nil {
			return admin.Options{}, err
		}
		opts.Seed = &seed
	}
	return opts, nil
}

// output opens path for writing; "" or "-" is stdout.
func output(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("adminctl: create %s: %w", path, err)
	}
	return f, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
