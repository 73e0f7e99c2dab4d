package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	router "github.com/goliatone/go-router"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/goliatone/go-admin-console/components/admin"
	"github.com/goliatone/go-admin-console/components/admin/gorouter"
	"github.com/goliatone/go-admin-console/components/reports"
	"github.com/goliatone/go-admin-console/pkg/telemetry"
)

type serveCmd struct {
	Addr        string `env:"ADMIN_HTTP_ADDR" default:":8080" help:"HTTP listen address."`
	MetricsAddr string `name:"metrics-addr" env:"ADMIN_METRICS_ADDR" default:":9090" help:"Prometheus listen address; empty disables metrics."`
	BasePath    string `name:"base-path" env:"ADMIN_BASE_PATH" default:"/admin" help:"Route prefix."`
}

func (cmd *serveCmd) Run(ctx context.Context, g *Globals) error {
	logger, err := g.logger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	prom, err := telemetry.NewPrometheus(reg)
	if err != nil {
		return err
	}
	rec := telemetry.Multi{telemetry.NewZap(logger), prom}

	opts, err := g.workspaceOptions(rec)
	if err != nil {
		return err
	}
	sessions := admin.NewSessions(admin.SessionsOptions{Workspace: opts})

	renderer, err := reports.NewTemplateRenderer()
	if err != nil {
		return fmt.Errorf("adminctl: build template renderer: %w", err)
	}

	server := router.NewFiberAdapter()
	if err := gorouter.Register(gorouter.Config[*fiber.App]{
		Router:    server.Router(),
		Sessions:  sessions,
		Telemetry: rec,
		Charts:    reports.NewChartRenderer(),
		Page:      reports.NewPage(renderer, nil),
		BasePath:  cmd.BasePath,
	}); err != nil {
		return fmt.Errorf("adminctl: register routes: %w", err)
	}

	if cmd.MetricsAddr != "" {
		metrics := &http.Server{
			Addr:              cmd.MetricsAddr,
			Handler:           metricsMux(reg),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := metrics.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Errorw("metrics server stopped", "error", err)
			}
		}()
		defer func() { _ = metrics.Shutdown(context.WithoutCancel(ctx)) }()
	}

	logger.Infow("admin console listening",
		"addr", cmd.Addr,
		"base_path", cmd.BasePath,
		"metrics_addr", cmd.MetricsAddr,
		"id_policy", g.IDPolicy,
	)
	return server.Serve(cmd.Addr)
}

func metricsMux(reg *prometheus.Registry) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	return mux
}

type exportCmd struct {
	Collection string `arg:"" enum:"products,orders,users" help:"Collection to export."`
	Format     string `default:"csv" enum:"csv,xlsx" help:"Output format."`
	Out        string `short:"o" default:"-" help:"Output file, - for stdout."`
}

func (cmd *exportCmd) Run(ctx context.Context, g *Globals) error {
	opts, err := g.workspaceOptions(nil)
	if err != nil {
		return err
	}
	table, err := admin.NewWorkspace(opts).Table(cmd.Collection)
	if err != nil {
		return err
	}
	out, err := output(cmd.Out)
	if err != nil {
		return err
	}
	if err := reports.WriteRows(out, cmd.Format, cmd.Collection, table); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

type reportCmd struct {
	Kind  string `arg:"" enum:"chart,workbook,page" help:"Report artifact to write."`
	Out   string `short:"o" default:"-" help:"Output file, - for stdout."`
	Start string `help:"Range start shown on the printable page."`
	End   string `help:"Range end shown on the printable page."`
}

func (cmd *reportCmd) Run(ctx context.Context) error {
	out, err := output(cmd.Out)
	if err != nil {
		return err
	}
	if err := cmd.write(out); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func (cmd *reportCmd) write(out io.Writer) error {
	switch cmd.Kind {
	case "chart":
		return reports.NewChartRenderer(reports.WithChartMemo(false)).RenderSalesChart(out, reports.SalesSeries())
	case "workbook":
		return reports.WriteSalesWorkbook(out, reports.SalesSeries())
	case "page":
		renderer, err := reports.NewTemplateRenderer()
		if err != nil {
			return fmt.Errorf("adminctl: build template renderer: %w", err)
		}
		return reports.NewPage(renderer, nil).Render(out, reports.PageInput{Start: cmd.Start, End: cmd.End})
	default:
		return fmt.Errorf("adminctl: unknown report %q", cmd.Kind)
	}
}

type seedCmd struct {
	Validate seedValidateCmd `cmd:"" help:"Validate a YAML seed document against the schema."`
}

type seedValidateCmd struct {
	Path string `arg:"" type:"existingfile" help:"Seed document to validate."`
}

func (cmd *seedValidateCmd) Run(ctx context.Context) error {
	seed, err := admin.LoadSeedFile(cmd.Path)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d products, %d orders, %d users\n", cmd.Path, len(seed.Products), len(seed.Orders), len(seed.Users))
	return nil
}
