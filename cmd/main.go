package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gin-storefront/cmd/bootstrap"
	"gin-storefront/internal/pkg/config"
	"gin-storefront/internal/usecase/pages"
	"gin-storefront/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

const (
	readHeaderTimeout = 10 * time.Second
	warmTimeout       = 30 * time.Second
)

func init() {
	// 設定ミスでもデバッグ情報を公開しない（フェイルセーフ）
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           gin-storefront
// @version         1.0
// @description     Storefront pages (discounts, terms and conditions) and the content API they read from.

// @BasePath  /
// @schemes http https
func startServer(
	lc fx.Lifecycle,
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	tycs pages.Loader[readmodel.TyCsResponse],
) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	static, isStatic := tycs.(*pages.StaticLoader[readmodel.TyCsResponse])
	hangup := make(chan os.Signal, 1)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("🚀 サーバーを起動します", "address", srv.Addr, "mode", gin.Mode(), "content_source", cfg.Content.Source)
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("サーバーの起動に失敗しました", "error", err)
				}
			}()

			if isStatic {
				signal.Notify(hangup, syscall.SIGHUP)
				go warmStaticPages(static, cfg.Locale.Supported, logger)
				go rebuildOnHangup(static, cfg.Locale.Supported, hangup, logger)
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("🛑 サーバーを停止します")
			signal.Stop(hangup)
			close(hangup)
			return srv.Shutdown(ctx)
		},
	})
}

// warmStaticPages loads the static pages for every locale, the way a build step would.
// A failure is only logged: the page is loaded on its first request instead.
func warmStaticPages(static *pages.StaticLoader[readmodel.TyCsResponse], locales []string, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), warmTimeout)
	defer cancel()

	if err := static.Warm(ctx, locales); err != nil {
		logger.Warn("静的ページの事前読み込みに失敗しました", "error", err)
		return
	}
	logger.Info("静的ページを読み込みました", "locales", locales)
}

// rebuildOnHangup drops and reloads the static pages on every signal until signals is closed.
func rebuildOnHangup(static *pages.StaticLoader[readmodel.TyCsResponse], locales []string, signals <-chan os.Signal, logger *slog.Logger) {
	for range signals {
		logger.Info("SIGHUP を受信しました。静的ページを再構築します")
		static.Rebuild()
		warmStaticPages(static, locales, logger)
	}
}

func main() {
	app := fx.New(
		bootstrap.Module,
		fx.Provide(
			func() *gin.Engine {
				return gin.New()
			},
		),
		fx.Invoke(
			startServer,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("アプリケーションの起動に失敗しました", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("アプリケーションの停止に失敗しました", "error", err)
	}

	slog.Info("アプリケーションが正常に停止しました")
}
