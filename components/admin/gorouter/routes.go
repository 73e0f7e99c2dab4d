// Package gorouter mounts the admin console on a go-router router: session
// lifecycle, one JSON page per collection, exports, reports and a WebSocket
// change stream.
package gorouter

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	router "github.com/goliatone/go-router"

	"github.com/goliatone/go-admin-console/components/admin"
	"github.com/goliatone/go-admin-console/components/admin/commands"
	"github.com/goliatone/go-admin-console/components/admin/httpapi"
	"github.com/goliatone/go-admin-console/components/admin/queries"
	"github.com/goliatone/go-admin-console/components/collection"
	"github.com/goliatone/go-admin-console/components/entities/orders"
	"github.com/goliatone/go-admin-console/components/entities/products"
	"github.com/goliatone/go-admin-console/components/entities/users"
	"github.com/goliatone/go-admin-console/components/reports"
)

const defaultActivityLimit = 20

// Config wires go-router with the admin sessions and reports.
type Config[T any] struct {
	Router    router.Router[T]
	Sessions  *admin.Sessions
	Telemetry commands.Telemetry
	Charts    *reports.ChartRenderer
	Page      *reports.Page
	BasePath  string
	Routes    RouteConfig
}

// RouteConfig customizes the relative paths of the admin endpoints. Session
// scoped paths are mounted under Session.
type RouteConfig struct {
	Sessions  string
	Session   string
	Tiles     string
	Nav       string
	Activity  string
	Export    string
	WebSocket string
	Reports   string
}

// Register mounts the admin routes on a go-router router.
func Register[T any](cfg Config[T]) error {
	if cfg.Router == nil {
		return errors.New("gorouter: router is required")
	}
	if cfg.Sessions == nil {
		return errors.New("gorouter: sessions are required")
	}
	routes := cfg.routes()
	base := cfg.BasePath
	if base == "" {
		base = "/admin"
	}
	charts := cfg.Charts
	if charts == nil {
		charts = reports.NewChartRenderer()
	}
	sessions := cfg.Sessions
	group := cfg.Router.Group(base)

	group.Post(routes.Sessions, router.WrapHandler(func(ctx router.Context) error {
		workspace := sessions.Create(ctx.Context())
		return ctx.JSON(http.StatusCreated, map[string]any{
			"id":  workspace.ID,
			"nav": admin.Nav(base),
		})
	}))

	group.Delete(routes.Session, router.WrapHandler(func(ctx router.Context) error {
		if !sessions.Delete(ctx.Context(), ctx.Param("session")) {
			return respondError(ctx, http.StatusNotFound, admin.ErrUnknownSession)
		}
		return ctx.JSON(http.StatusOK, httpapi.StatusBody{Status: "deleted"})
	}))

	tiles := queries.NewTilesQuery(sessions)
	group.Get(routes.Session+routes.Tiles, router.WrapHandler(func(ctx router.Context) error {
		out, err := tiles.Query(ctx.Context(), queries.TilesInput{Session: ctx.Param("session")})
		if err != nil {
			return respondError(ctx, httpapi.Status(err), err)
		}
		return ctx.JSON(http.StatusOK, out)
	}))

	group.Get(routes.Session+routes.Nav, router.WrapHandler(func(ctx router.Context) error {
		if _, err := sessions.Get(ctx.Param("session")); err != nil {
			return respondError(ctx, httpapi.Status(err), err)
		}
		return ctx.JSON(http.StatusOK, admin.Nav(base))
	}))

	group.Get(routes.Session+routes.Activity, router.WrapHandler(func(ctx router.Context) error {
		workspace, err := sessions.Get(ctx.Param("session"))
		if err != nil {
			return respondError(ctx, httpapi.Status(err), err)
		}
		return ctx.JSON(http.StatusOK, workspace.Feed().Recent(parseLimit(ctx.Query("limit"))))
	}))

	tableQuery := queries.NewTableQuery(sessions)
	group.Get(routes.Session+routes.Export, router.WrapHandler(func(ctx router.Context) error {
		name := ctx.Param("collection")
		format := exportFormat(ctx.Query("format"))
		contentType, err := reports.ContentType(format)
		if err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		table, err := tableQuery.Query(ctx.Context(), queries.TableInput{Session: ctx.Param("session"), Collection: name})
		if err != nil {
			return respondError(ctx, httpapi.Status(err), err)
		}
		var buf bytes.Buffer
		if err := reports.WriteRows(&buf, format, name, table); err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		ctx.SetHeader("Content-Type", contentType)
		ctx.SetHeader("Content-Disposition", `attachment; filename="`+name+"."+format+`"`)
		return ctx.Send(buf.Bytes())
	}))

	session := group.Group(routes.Session)
	mountCollection(session, products.CollectionName, httpapi.NewHandlers(sessions.ProductsResolver(), cfg.Telemetry))
	mountCollection(session, orders.CollectionName, httpapi.NewHandlers(sessions.OrdersResolver(), cfg.Telemetry))
	mountCollection(session, users.CollectionName, httpapi.NewHandlers(sessions.UsersResolver(), cfg.Telemetry))

	registerReports(group.Group(routes.Reports), charts, cfg.Page)
	registerWebSocket(group, sessions.Broadcast(), routes.WebSocket)
	return nil
}

func mountCollection[R any, T any](r router.Router[R], name string, h *httpapi.Handlers[T]) {
	page := "/" + name
	r.Get(page, router.WrapHandler(func(ctx router.Context) error {
		var filter *commands.FilterInput
		search, category := ctx.Query("search"), ctx.Query("category")
		if search != "" || category != "" || ctx.Query("reset") != "" {
			filter = &commands.FilterInput{Search: search, Category: category}
		}
		status, body := h.List(ctx.Context(), ctx.Param("session"), filter)
		return ctx.JSON(status, body)
	}))
	r.Post(page+"/draft", router.WrapHandler(func(ctx router.Context) error {
		status, body := h.BeginDraft(ctx.Context(), ctx.Param("session"), ctx.Body())
		return ctx.JSON(status, body)
	}))
	r.Post(page+"/draft/field", router.WrapHandler(func(ctx router.Context) error {
		status, body := h.UpdateDraft(ctx.Context(), ctx.Param("session"), ctx.Body())
		return ctx.JSON(status, body)
	}))
	r.Post(page+"/draft/commit", router.WrapHandler(func(ctx router.Context) error {
		status, body := h.CommitDraft(ctx.Context(), ctx.Param("session"))
		return ctx.JSON(status, body)
	}))
	r.Delete(page+"/draft", router.WrapHandler(func(ctx router.Context) error {
		status, body := h.CancelDraft(ctx.Context(), ctx.Param("session"))
		return ctx.JSON(status, body)
	}))
	r.Delete(page+"/records/:id", router.WrapHandler(func(ctx router.Context) error {
		id, err := parseID(ctx.Param("id"))
		if err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		status, body := h.RemoveRecord(ctx.Context(), ctx.Param("session"), id)
		return ctx.JSON(status, body)
	}))
	r.Post(page+"/records/:id/field", router.WrapHandler(func(ctx router.Context) error {
		id, err := parseID(ctx.Param("id"))
		if err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		status, body := h.TransitionRecord(ctx.Context(), ctx.Param("session"), id, ctx.Body())
		return ctx.JSON(status, body)
	}))
}

type filterRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func registerReports[T any](r router.Router[T], charts *reports.ChartRenderer, page *reports.Page) {
	r.Get("/sales", router.WrapHandler(func(ctx router.Context) error {
		html, err := charts.SalesChartHTML(reports.SalesSeries())
		if err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		ctx.SetHeader("Content-Type", "text/html; charset=utf-8")
		return ctx.Send([]byte(html))
	}))

	r.Get("/sales/data", router.WrapHandler(func(ctx router.Context) error {
		return ctx.JSON(http.StatusOK, reports.SalesSeries())
	}))

	r.Get("/sales.xlsx", router.WrapHandler(func(ctx router.Context) error {
		var buf bytes.Buffer
		if err := reports.WriteSalesWorkbook(&buf, reports.SalesSeries()); err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		contentType, _ := reports.ContentType(reports.FormatXLSX)
		ctx.SetHeader("Content-Type", contentType)
		ctx.SetHeader("Content-Disposition", `attachment; filename="sales_report.xlsx"`)
		return ctx.Send(buf.Bytes())
	}))

	r.Post("/filter", router.WrapHandler(func(ctx router.Context) error {
		var payload filterRequest
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{
			"message": reports.FilterMessage(payload.Start, payload.End),
		})
	}))

	if page != nil {
		r.Get("/print", router.WrapHandler(func(ctx router.Context) error {
			var buf bytes.Buffer
			input := reports.PageInput{Start: ctx.Query("start"), End: ctx.Query("end")}
			if err := page.Render(&buf, input); err != nil {
				return respondError(ctx, http.StatusInternalServerError, err)
			}
			ctx.SetHeader("Content-Type", "text/html; charset=utf-8")
			return ctx.Send(buf.Bytes())
		}))
	}
}

func registerWebSocket[T any](r router.Router[T], hook *collection.BroadcastHook, path string) {
	cfg := router.DefaultWebSocketConfig()
	r.WebSocket(path, cfg, func(ws router.WebSocketContext) error {
		events, cancel := hook.Subscribe()
		defer cancel()
		for {
			select {
			case event, ok := <-events:
				if !ok {
					return nil
				}
				if err := ws.WriteJSON(event); err != nil {
					return err
				}
			case <-ws.Context().Done():
				return ws.Close()
			}
		}
	})
}

func respondError(ctx router.Context, status int, err error) error {
	return ctx.JSON(status, httpapi.ErrorBody{Error: err.Error()})
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errors.New("gorouter: record id must be an integer")
	}
	return id, nil
}

func parseLimit(raw string) int {
	limit, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || limit <= 0 {
		return defaultActivityLimit
	}
	return limit
}

func exportFormat(raw string) string {
	format := strings.ToLower(strings.TrimSpace(raw))
	if format == "" {
		return reports.FormatCSV
	}
	return format
}

func (cfg Config[T]) routes() RouteConfig {
	return defaultRouteConfig(cfg.Routes)
}

func defaultRouteConfig(routes RouteConfig) RouteConfig {
	if routes.Sessions == "" {
		routes.Sessions = "/sessions"
	}
	if routes.Session == "" {
		routes.Session = "/sessions/:session"
	}
	if routes.Tiles == "" {
		routes.Tiles = "/tiles"
	}
	if routes.Nav == "" {
		routes.Nav = "/nav"
	}
	if routes.Activity == "" {
		routes.Activity = "/activity"
	}
	if routes.Export == "" {
		routes.Export = "/export/:collection"
	}
	if routes.WebSocket == "" {
		routes.WebSocket = "/ws"
	}
	if routes.Reports == "" {
		routes.Reports = "/reports"
	}
	return routes
}
