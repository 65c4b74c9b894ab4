package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	nethttp "net/http"
	"time"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/iWorld-y/opal_dashboard/app/dashboard/internal/conf"
	"github.com/iWorld-y/opal_dashboard/app/dashboard/internal/service"
	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/importer"
)

//go:embed assets/*
var assets embed.FS

func NewHTTPServer(c *conf.Server, s *service.DashboardService, logger log.Logger) *http.Server {
	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(),
		),
	}
	if c != nil && c.Http != nil {
		if c.Http.Addr != "" {
			opts = append(opts, http.Address(c.Http.Addr))
		}
		if c.Http.Timeout != "" {
			if d, err := time.ParseDuration(c.Http.Timeout); err == nil {
				opts = append(opts, http.Timeout(d))
			}
		}
	}

	srv := http.NewServer(opts...)
	registerAPI(srv.Route("/api"), s)

	page := newPageRenderer(s, logger)
	srv.HandleFunc("/", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.URL.Path != "/" {
			nethttp.NotFound(w, r)
			return
		}
		page.ServeHTTP(w, r)
	})

	return srv
}

// handle 让路由处理函数经过服务端中间件，成功时按 JSON 返回
func handle(fn func(ctx http.Context) (any, error)) http.HandlerFunc {
	return func(ctx http.Context) error {
		h := ctx.Middleware(func(context.Context, any) (any, error) {
			return fn(ctx)
		})
		out, err := h(ctx, nil)
		if err != nil {
			return err
		}
		return ctx.Result(nethttp.StatusOK, out)
	}
}

func bind[T any](ctx http.Context) (*T, error) {
	var req T
	if err := ctx.Bind(&req); err != nil {
		return nil, kerrors.BadRequest("BAD_REQUEST", err.Error())
	}
	return &req, nil
}

func registerAPI(r *http.Router, s *service.DashboardService) {
	r.GET("/state", handle(func(ctx http.Context) (any, error) {
		return s.State(ctx)
	}))
	r.GET("/styles", handle(func(ctx http.Context) (any, error) {
		return s.Styles(ctx)
	}))
	r.GET("/charts", handle(func(ctx http.Context) (any, error) {
		return s.Charts(ctx)
	}))
	r.GET("/charts/{tag}", handle(func(ctx http.Context) (any, error) {
		return s.Chart(ctx, ctx.Vars().Get("tag"))
	}))
	r.POST("/charts/refresh", handle(func(ctx http.Context) (any, error) {
		req, err := bind[service.RefreshRequest](ctx)
		if err != nil {
			return nil, err
		}
		return s.Refresh(ctx, req)
	}))

	r.POST("/document", handle(func(ctx http.Context) (any, error) {
		req, err := bind[service.EditRequest](ctx)
		if err != nil {
			return nil, err
		}
		return s.Edit(ctx, req)
	}))
	r.POST("/document/import", handle(func(ctx http.Context) (any, error) {
		name, body, err := readUpload(ctx.Request())
		if err != nil {
			return nil, err
		}
		return s.Import(ctx, name, body)
	}))
	r.POST("/document/import-url", handle(func(ctx http.Context) (any, error) {
		req, err := bind[service.ImportURLRequest](ctx)
		if err != nil {
			return nil, err
		}
		return s.ImportURL(ctx, req)
	}))
	r.GET("/document/export", func(ctx http.Context) error {
		art, err := s.Export(ctx, ctx.Query().Get("format"))
		if err != nil {
			return err
		}
		ctx.Response().Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", art.Filename))
		return ctx.Blob(nethttp.StatusOK, art.ContentType, art.Body)
	})

	r.POST("/chat", handle(func(ctx http.Context) (any, error) {
		req, err := bind[service.ChatRequest](ctx)
		if err != nil {
			return nil, err
		}
		return s.Chat(ctx, req)
	}))
	r.POST("/chat/open", handle(func(ctx http.Context) (any, error) {
		return s.SetChatOpen(ctx, true)
	}))
	r.POST("/chat/close", handle(func(ctx http.Context) (any, error) {
		return s.SetChatOpen(ctx, false)
	}))
	r.POST("/tools/{name}", handle(func(ctx http.Context) (any, error) {
		req, err := bind[service.ToolRequest](ctx)
		if err != nil {
			return nil, err
		}
		return s.RunTool(ctx, ctx.Vars().Get("name"), req)
	}))

	r.POST("/style/spin", handle(func(ctx http.Context) (any, error) {
		return s.Spin(ctx)
	}))
	r.POST("/style/{id}", handle(func(ctx http.Context) (any, error) {
		return s.SelectStyle(ctx, ctx.Vars().Get("id"))
	}))
	r.POST("/language/toggle", handle(func(ctx http.Context) (any, error) {
		return s.ToggleLanguage(ctx)
	}))
	r.POST("/theme/toggle", handle(func(ctx http.Context) (any, error) {
		return s.ToggleTheme(ctx)
	}))
	r.POST("/view/{view}", handle(func(ctx http.Context) (any, error) {
		return s.SetView(ctx, ctx.Vars().Get("view"))
	}))
	r.POST("/model", handle(func(ctx http.Context) (any, error) {
		req, err := bind[service.ModelRequest](ctx)
		if err != nil {
			return nil, err
		}
		return s.SelectModel(ctx, req)
	}))
	r.GET("/alerts", handle(func(ctx http.Context) (any, error) {
		return s.Alerts(ctx)
	}))
}

// readUpload 支持 multipart 的 file 字段，或者原始请求体加 ?name=
func readUpload(r *nethttp.Request) (string, []byte, error) {
	if f, hdr, err := r.FormFile("file"); err == nil {
		defer f.Close()
		body, err := importer.ReadFile(hdr.Filename, f)
		if err != nil {
			return "", nil, uploadError(err)
		}
		return hdr.Filename, body, nil
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		return "", nil, kerrors.BadRequest("NAME_REQUIRED", "file name is required")
	}
	body, err := importer.ReadFile(name, r.Body)
	if err != nil {
		return "", nil, uploadError(err)
	}
	return name, body, nil
}

func uploadError(err error) error {
	if errors.Is(err, importer.ErrTooLarge) {
		return kerrors.New(nethttp.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
	}
	return kerrors.BadRequest("UNSUPPORTED_FILE", err.Error())
}
