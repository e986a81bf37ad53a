package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"freight_service/api"
	"freight_service/config"
	"freight_service/dao/storage"
	"freight_service/handler"
	"freight_service/logger"
	"freight_service/mock"
	"freight_service/third_party/snowflake"

	"go.uber.org/zap"
)

func main() {
	var cfn string
	// 0.从命令行获取可能的conf路径
	flag.StringVar(&cfn, "conf", "./conf/config.yaml", "指定配置文件路径")
	flag.Parse()

	// 1. 加载配置文件
	err := config.Init(cfn)
	if err != nil {
		panic(err) // 程序启动时加载配置文件失败直接退出
	}

	// 2. 加载日志
	err = logger.Init(config.Conf.LogConfig, config.Conf.Mode)
	if err != nil {
		panic(err)
	}
	defer zap.L().Sync()

	// 3. 初始化snowflake（请求ID）
	err = snowflake.Init(config.Conf.StartTime, config.Conf.MachineID)
	if err != nil {
		panic(err)
	}

	// 4. 初始化本地存储
	store, err := openStore()
	if err != nil {
		panic(err)
	}

	// 5. 构建mock注册表与统一请求客户端
	registry := mock.NewRegistry(store)
	client := api.New(config.Conf.APIHost, config.Conf.UseMock, registry)

	// 启动自检：mock链路走一遍 /status
	if _, err := client.Get(context.Background(), "/status", nil); err != nil {
		zap.L().Warn("启动自检失败", zap.Error(err))
	}

	// 6. 把mock注册表挂载成本地HTTP后端
	router := handler.NewRouter(registry, config.Conf.Mode)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Conf.Port),
		Handler: router,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	zap.L().Info("service start...",
		zap.String("name", config.Conf.Name),
		zap.Int("port", config.Conf.Port),
		zap.Bool("use_mock", config.Conf.UseMock))

	// 正常会hang在此处，收到退出信号后优雅关停
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("server shutdown failed", zap.Error(err))
	}
	zap.L().Info("service exit")
}

// openStore 按配置选择存储后端
func openStore() (storage.Store, error) {
	cfg := config.Conf.StorageConfig
	if cfg == nil {
		return storage.NewMemStore(), nil
	}
	switch cfg.Backend {
	case "redis":
		st, err := storage.NewRedisStore(cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		return st, nil
	case "memory":
		return storage.NewMemStore(), nil
	default:
		path := cfg.Path
		if path == "" {
			path = "data/storage.json"
		}
		st, err := storage.NewFileStore(path)
		if err != nil {
			return nil, err
		}
		return st, nil
	}
}
