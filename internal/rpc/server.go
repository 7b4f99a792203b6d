package rpc

import (
	"log/slog"

	"github.com/daniilsolovey/media-portal/internal/display"
	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"
)

func New(logger *slog.Logger, registry *display.Registry) *zenrpc.Server {
	rpcService := NewDisplayService(registry)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true, AllowCORS: true})
	rpcServer.Register("display", rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "media-portal", nil))

	return rpcServer
}
