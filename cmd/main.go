// 程序入口：读取配置、加载目录、挂载路由并启动服务；目录加载失败时不监听任何端口
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"parks-api/internal/api"
	"parks-api/internal/apidoc"
	"parks-api/internal/catalog"
	"parks-api/internal/config"
	"parks-api/internal/logger"
	"parks-api/internal/metrics"
	"parks-api/internal/middleware"
	"parks-api/internal/utils"
	"parks-api/internal/version"
)

func main() {
	cfg, err := config.Load()
	l := logger.Setup()
	if err != nil {
		l.Error("config_error", "err", err)
		os.Exit(1)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, cfg, l, nil); err != nil {
		l.Error("server_error", "err", err)
		os.Exit(1)
	}
}

// run：启动顺序固定为 加载目录 → 构建路由 → 监听；ctx 取消后优雅退出
// onListen 在端口绑定成功后回调，可为 nil。
func run(ctx context.Context, cfg *config.Config, l *slog.Logger, onListen func(net.Addr)) error {
	l.Debug("config_loaded", "addr", cfg.Addr, "parks", cfg.ParksPath, "states", cfg.StatesPath, "commit", version.Commit)

	cats, err := catalog.LoadAll(cfg.ParksPath, cfg.StatesPath)
	if err != nil {
		l.Error("catalog_load_error", "err", err)
		return fmt.Errorf("load catalogs: %w", err)
	}
	metrics.CatalogRecords.WithLabelValues("parks").Set(float64(cats.Parks.Len()))
	metrics.CatalogRecords.WithLabelValues("states").Set(float64(cats.States.Len()))
	l.Info("catalog_load_ok", "parks", cats.Parks.Len(), "states", cats.States.Len())

	mux := api.BuildRoutes(cats)
	if cfg.Metrics {
		mux.Handle("GET /metrics", metrics.Handler())
	}
	if cfg.APIDocs {
		if err := apidoc.Register(mux); err != nil {
			return fmt.Errorf("api docs: %w", err)
		}
		l.Debug("api_docs_enabled", "spec", apidoc.SpecPath, "ui", apidoc.UIPath)
	}

	if cfg.TLS.Enable {
		if err := utils.EnsureSelfSignedCert(cfg.TLS.CertPath, cfg.TLS.KeyPath, "parks-api.local"); err != nil {
			return fmt.Errorf("tls cert: %w", err)
		}
	}

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Addr, err)
	}
	if onListen != nil {
		onListen(ln.Addr())
	}

	s := &http.Server{
		Handler:           middleware.Wrap(mux),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
	errCh := make(chan error, 1)
	go func() {
		if cfg.TLS.Enable {
			l.Info("listening_tls", "addr", ln.Addr().String(), "cert", cfg.TLS.CertPath)
			errCh <- s.ServeTLS(ln, cfg.TLS.CertPath, cfg.TLS.KeyPath)
			return
		}
		l.Info("listening", "addr", ln.Addr().String())
		errCh <- s.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	l.Info("shutdown_begin", "timeout", cfg.ShutdownTimeout.String())
	sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := s.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	l.Info("shutdown_done")
	return nil
}
