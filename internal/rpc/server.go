package rpc

import (
	"log/slog"

	"github.com/daniilsolovey/desa-portal/internal/desa"
	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"
)

func New(logger *slog.Logger, manager *desa.Manager) *zenrpc.Server {
	rpcService := NewPortalService(manager)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("portal", rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "desa-portal", nil))

	return rpcServer
}
