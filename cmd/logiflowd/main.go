// logiflowd is the logistics API daemon: it wires the in-memory store, the
// session service and the HTTP API into one process.
package main

import (
	"context"
	nethttp "net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/logiflow/logiflow/http"
	"github.com/logiflow/logiflow/inmem"
	"github.com/logiflow/logiflow/jsonweb"
	kithttp "github.com/logiflow/logiflow/kit/transport/http"
	"github.com/logiflow/logiflow/logger"
	"github.com/logiflow/logiflow/order"
	"github.com/logiflow/logiflow/session"
)

const (
	// envPrefix is the prefix of environment variables bound to flags, e.g.
	// LOGIFLOWD_HTTP_BIND_ADDRESS overrides --http-bind-address.
	envPrefix = "LOGIFLOWD"

	// signingKeyID identifies the in-process session signing key. A store
	// of rotated keys would assign fresh ids; with a single static secret
	// there is only ever one.
	signingKeyID = "v1"
)

type config struct {
	httpBindAddress string
	sessionSecret   string
	sessionLength   time.Duration
	logLevel        string
	logFormat       string
	seed            bool
}

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var cfg config

	cmd := &cobra.Command{
		Use:          "logiflowd",
		Short:        "Multi-tenant logistics management API server",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), &cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.httpBindAddress, "http-bind-address", ":8080", "bind address for the HTTP API")
	cmd.Flags().StringVar(&cfg.sessionSecret, "session-secret", "", "secret used to sign session tokens")
	cmd.Flags().DurationVar(&cfg.sessionLength, "session-length", session.DefaultSessionLength, "TTL of issued session tokens")
	cmd.Flags().StringVar(&cfg.logLevel, "log-level", "info", "supported log levels are debug, info, warn and error")
	cmd.Flags().StringVar(&cfg.logFormat, "log-format", "auto", "log output format, one of auto, console or json")
	cmd.Flags().BoolVar(&cfg.seed, "seed", true, "load the demo data set on startup")

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed && v.IsSet(f.Name) {
			_ = cmd.Flags().Set(f.Name, v.GetString(f.Name))
		}
	})

	return cmd
}

func run(ctx context.Context, cfg *config) error {
	var lvl zapcore.Level
	if err := lvl.Set(cfg.logLevel); err != nil {
		return err
	}
	logConf := logger.Config{
		Format: cfg.logFormat,
		Level:  lvl,
	}
	log, err := logConf.New(os.Stdout)
	if err != nil {
		return err
	}
	defer log.Sync()

	if cfg.sessionSecret == "" {
		cfg.sessionSecret = "logiflow-dev-secret"
		log.Warn("no session secret configured, using the development default")
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := inmem.NewService()
	if cfg.seed {
		if err := store.Seed(ctx); err != nil {
			return err
		}
		log.Info("demo data loaded")
	}

	reg := prometheus.NewRegistry()

	signer := jsonweb.NewTokenSigner(signingKeyID, []byte(cfg.sessionSecret))
	parser := jsonweb.NewTokenParser(jsonweb.SingleKeyStore(signingKeyID, []byte(cfg.sessionSecret)))

	sessionSvc := session.NewService(store, store, signer,
		session.WithSessionLength(cfg.sessionLength),
	)

	orderSvc := order.NewOrderMetrics(reg,
		order.NewOrderLogger(log.With(zap.String("service", "order")), store),
	)

	errorHandler := kithttp.ErrorHandler(0)
	apiHandler := http.NewAPIHandler(&http.APIBackend{
		Logger:             log,
		HTTPErrorHandler:   errorHandler,
		PrometheusRegistry: reg,

		TenantService:    store,
		UserService:      store,
		CustomerService:  store,
		SupplierService:  store,
		ProductService:   store,
		WarehouseService: store,
		CarrierService:   store,
		InventoryService: store,
		OrderService:     orderSvc,
		DeliveryService:  store,
		RouteService:     store,
		ReportService:    store,
		SessionService:   sessionSvc,
	})

	auth := http.NewAuthenticationHandler(log.With(zap.String("handler", "authentication")), errorHandler)
	auth.TokenParser = parser
	auth.UserService = store
	auth.TenantService = store
	auth.Handler = apiHandler
	auth.RegisterNoAuthRoute("POST", "/api/auth/login")
	auth.RegisterNoAuthRoute("GET", "/health")
	auth.RegisterNoAuthRoute("GET", "/metrics")
	auth.RegisterNoAuthRoute("OPTIONS", "/*")

	srv := &nethttp.Server{
		Addr:    cfg.httpBindAddress,
		Handler: auth,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("transport", "http"), zap.String("addr", cfg.httpBindAddress))
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-srvErr:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")

	var result error
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		result = multierror.Append(result, err)
	}
	if err := <-srvErr; err != nil && err != nethttp.ErrServerClosed {
		result = multierror.Append(result, err)
	}
	return result
}
