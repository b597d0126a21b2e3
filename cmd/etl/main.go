package main

import (
	"Myfluence/internal/etl/config"
	"Myfluence/internal/pkg/cron"
	"Myfluence/internal/pkg/logger"
	"Myfluence/internal/wire"
	"context"
	"flag"
	log "log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

func main() {
	dataDir := flag.String("data-dir", "", "base data directory containing videos/metrics/sentiment/info")
	outDir := flag.String("outdir", "", "output directory for JSONL files")
	country := flag.String("country", "", "country code to store in creators")
	mongoURI := flag.String("mongo-uri", "", "MongoDB connection URI")
	dbName := flag.String("db-name", "", "MongoDB database name")
	insert := flag.Bool("insert", false, "insert data into MongoDB after generating JSONL files")
	configFile := flag.String("config", "", "path to config file (default: ./configs/config.yaml if present)")
	flag.Parse()

	// 命令行显式给出的值优先于环境变量与配置文件
	overrides := map[string]any{}
	if *dataDir != "" {
		overrides["data.dir"] = *dataDir
	}
	if *outDir != "" {
		overrides["data.out_dir"] = *outDir
	}
	if *country != "" {
		overrides["data.country"] = *country
	}
	if *mongoURI != "" {
		overrides["mongo.uri"] = *mongoURI
	}
	if *dbName != "" {
		overrides["mongo.database"] = *dbName
	}

	cfg, err := config.LoadConfig(*configFile, overrides)
	if err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		os.Exit(1)
	}

	logger.InitLogger(cfg)

	app, err := wire.BuildApplication(cfg, *insert)
	if err != nil {
		log.Error("Fatal error: failed to create application", "err", err)
		os.Exit(1)
	}

	// 单次模式：跑一趟即退出
	if cfg.Schedule == "" {
		traceID := "run-" + uuid.NewString()
		ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)
		if err := app.IngestJob.RunOnce(ctx); err != nil {
			os.Exit(1)
		}
		return
	}

	// 调度模式：按 cron 表达式周期重跑，直到收到退出信号
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mgr := cron.NewCronManager(cfg.Schedule, app.IngestJob)
	if err := cron.InitCron(mgr); err != nil {
		log.Error("Fatal error: failed to start cron jobs", "err", err)
		os.Exit(1)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Cron Jobs stopping...")
		mgr.Stop()
		return nil
	})
	if err := g.Wait(); err != nil {
		os.Exit(1)
	}
}
