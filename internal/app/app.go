// Package app wires the loader, its drivers and the ambient services into an
// fx application.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"

	"github.com/fxnlabs/level-zero-loader/internal/config"
	"github.com/fxnlabs/level-zero-loader/internal/ddi"
	"github.com/fxnlabs/level-zero-loader/internal/driver"
	_ "github.com/fxnlabs/level-zero-loader/internal/driver/cpu"
	"github.com/fxnlabs/level-zero-loader/internal/loader"
	"github.com/fxnlabs/level-zero-loader/internal/logger"
	"github.com/fxnlabs/level-zero-loader/internal/metrics"
	"github.com/fxnlabs/level-zero-loader/internal/registry"
	"github.com/fxnlabs/level-zero-loader/internal/trace"
	"github.com/fxnlabs/level-zero-loader/internal/ze"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ErrNoDrivers is returned on start when no configured driver could be loaded.
var ErrNoDrivers = errors.New("no driver loaded")

// Module provides a *loader.Loader backed by the drivers cfg enables.
func Module(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(
			NewLogger,
			NewRegistry,
			NewMetrics,
			NewTraceLayer,
			NewManager,
			NewLoader,
		),
		fx.Invoke(registerManager, registerMetricsServer),
	)
}

func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(cfg.Logger.Verbosity, logger.WithEncoding(cfg.Logger.Encoding))
}

func NewRegistry(logger *zap.Logger) *registry.Registry {
	return registry.New(logger)
}

type MetricsParams struct {
	fx.In

	Config     *config.Config
	Registerer prometheus.Registerer `optional:"true"`
}

type MetricsResult struct {
	fx.Out

	Metrics  *metrics.DispatchMetrics
	Gatherer prometheus.Gatherer
}

// NewMetrics returns nil metrics when they are disabled. Without an injected
// Registerer the collectors go to a private registry.
func NewMetrics(p MetricsParams) MetricsResult {
	if !p.Config.Metrics.Enabled {
		return MetricsResult{}
	}
	reg := p.Registerer
	gatherer := prometheus.DefaultGatherer
	if reg == nil {
		private := prometheus.NewRegistry()
		reg, gatherer = private, private
	} else if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}
	return MetricsResult{
		Metrics:  metrics.NewDispatchMetrics(reg, p.Config.Metrics.Namespace),
		Gatherer: gatherer,
	}
}

type TraceParams struct {
	fx.In

	Config  *config.Config
	Logger  *zap.Logger
	Metrics *metrics.DispatchMetrics
	Output  io.Writer `name:"trace_output" optional:"true"`
}

// NewTraceLayer returns nil when neither tracing nor metrics are enabled, so
// the drivers' tables are used unwrapped.
func NewTraceLayer(p TraceParams) *trace.Layer {
	if !p.Config.Tracing.Enabled && p.Metrics == nil {
		return nil
	}
	var opts []trace.Option
	if p.Metrics != nil {
		opts = append(opts, trace.WithObserver(p.Metrics))
	}
	if p.Config.Tracing.Enabled {
		out := p.Output
		if out == nil {
			out = os.Stderr
		}
		var dumpOpts []trace.DumperOption
		if p.Config.Tracing.DumpParams {
			dumpOpts = append(dumpOpts, trace.WithParams())
		}
		dumper := trace.NewDumper(out, dumpOpts...)
		logHook := trace.LogHook(p.Logger.Named("trace"))
		opts = append(opts, trace.WithEpilogue(trace.Uniform(func(op ddi.OpID, params any, result ze.Result) {
			dumper.Hook(op, params, result)
			logHook(op, params, result)
		})))
	}
	return trace.NewLayer(opts...)
}

func NewManager(cfg *config.Config, reg *registry.Registry, logger *zap.Logger, layer *trace.Layer, m *metrics.DispatchMetrics) *driver.Manager {
	opts := []driver.ManagerOption{driver.WithAPIVersion(cfg.Loader.APIVersion)}
	if layer != nil {
		opts = append(opts, driver.WithTraceLayer(layer))
	}
	if m != nil {
		opts = append(opts, driver.WithLoadObserver(m))
	}
	return driver.NewManager(reg, logger, opts...)
}

func NewLoader(cfg *config.Config, reg *registry.Registry) *loader.Loader {
	var opts []loader.Option
	if cfg.Loader.StrictHandleArrays {
		opts = append(opts, loader.WithStrictHandleArrays())
	}
	return loader.New(reg, opts...)
}

func registerManager(lc fx.Lifecycle, cfg *config.Config, mgr *driver.Manager, logger *zap.Logger) {
	log := logger.Named("app")
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			var specs []driver.Spec
			for _, d := range cfg.EnabledDrivers() {
				specs = append(specs, driver.Spec{Name: d.Name, APIVersion: d.APIVersion})
			}
			err := mgr.Load(specs...)
			if mgr.Active() == 0 {
				if err != nil {
					return fmt.Errorf("%w: %w", ErrNoDrivers, err)
				}
				return ErrNoDrivers
			}
			if err != nil {
				log.Warn("Some drivers failed to load", zap.Error(err))
			}
			log.Info("Loader ready", zap.Int("drivers", mgr.Active()))
			return nil
		},
		OnStop: func(context.Context) error {
			return mgr.Close()
		},
	})
}

type serverParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Gatherer  prometheus.Gatherer `optional:"true"`
	Logger    *zap.Logger
}

func registerMetricsServer(p serverParams) {
	addr := p.Config.Metrics.ListenAddress
	if p.Gatherer == nil || addr == "" {
		return
	}
	log := p.Logger.Named("metrics")
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(p.Gatherer))
	srv := &http.Server{Addr: addr, Handler: mux}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", addr, err)
			}
			log.Info("Serving metrics", zap.Stringer("addr", ln.Addr()))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("Metrics server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
