package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"

	dig_container "github.com/trezcool/attendo/apps/api/di/dig"
	echoapi "github.com/trezcool/attendo/apps/api/echo"
	"github.com/trezcool/attendo/core"
	logsvc "github.com/trezcool/attendo/services/logger"
)

func main() {
	if err := dig_container.New().Invoke(run); err != nil {
		log.Fatal(err)
	}
}

func run(conf *core.Config, logger *logsvc.RollbarLogger, server *echoapi.Server) {
	logger.Info(fmt.Sprintf("%s starting : env %s, build %q", conf.AppName, conf.Env, conf.Build))
	defer logger.Flush()
	defer logger.Info(conf.AppName + " stopped")

	startDebugServer(conf, logger)
	go server.Start()
	logger.Info("API listening on " + conf.Server.Address)

	select {
	case err := <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)
	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: shutting down...", sig))
		shutdown(conf, logger, server)
	}
}

// startDebugServer serves /debug/pprof (net/http/pprof) and /debug/vars (expvar) on the debug host.
func startDebugServer(conf *core.Config, logger core.Logger) {
	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()
}

// shutdown lets in-flight requests finish within the configured timeout, then forces the server to close.
func shutdown(conf *core.Config, logger core.Logger, server *echoapi.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)
		if err = server.Close(); err != nil {
			logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
		}
	}
}
