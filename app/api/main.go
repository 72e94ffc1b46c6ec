package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/anft-xyz/goapi/base/ctx"
	"github.com/anft-xyz/goapi/base/database/mongoclient"
	"github.com/anft-xyz/goapi/base/database/redisclient"
	"github.com/anft-xyz/goapi/base/env"
	"github.com/anft-xyz/goapi/base/log"
	"github.com/anft-xyz/goapi/base/metrics"
	bValidator "github.com/anft-xyz/goapi/base/validator"
	"github.com/anft-xyz/goapi/domain"
	"github.com/anft-xyz/goapi/domain/keys"
	"github.com/anft-xyz/goapi/domain/listing"
	mmiddleware "github.com/anft-xyz/goapi/middleware"
	"github.com/anft-xyz/goapi/service/anft"
	"github.com/anft-xyz/goapi/service/cache"
	"github.com/anft-xyz/goapi/service/cache/provider"
	"github.com/anft-xyz/goapi/service/cache/provider/compound"
	"github.com/anft-xyz/goapi/service/cache/provider/primitive"
	redisProvider "github.com/anft-xyz/goapi/service/cache/provider/redis"
	"github.com/anft-xyz/goapi/service/chain"
	"github.com/anft-xyz/goapi/service/chain/contract"
	"github.com/anft-xyz/goapi/service/notify"
	"github.com/anft-xyz/goapi/service/query"
	"github.com/anft-xyz/goapi/service/redis"
	hc_delivery "github.com/anft-xyz/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/anft-xyz/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/anft-xyz/goapi/stores/healthcheck/usecase"
	listing_delivery "github.com/anft-xyz/goapi/stores/listing/delivery/http"
	listing_repository "github.com/anft-xyz/goapi/stores/listing/repository"
	"github.com/anft-xyz/goapi/stores/listing/session"
	listing_usecase "github.com/anft-xyz/goapi/stores/listing/usecase"

	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/anft-xyz/goapi/app/api/docs"
)

var configPath = pflag.String("config", env.ConfigPath(), "yaml config file")

func init() {
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configPath)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.SetDebug(true)
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

//	@title			ANFT Listing API
//	@version		1.0
//	@description	Tokenized real-estate listings of the ANFT marketplace, merged with their on-chain state.

// main
func main() {
	defer log.Sync()

	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middL.CORS)
	v, err := bValidator.New(listing.RegisterValidations)
	if err != nil {
		panic(err)
	}
	e.Validator = bValidator.NewCustomValidator(v)

	context, cancel := ctx.WithCancel(ctx.Background())
	defer cancel()

	loc := time.UTC
	if tz := viper.GetString("timezone"); tz != "" {
		if loc, err = time.LoadLocation(tz); err != nil {
			context.WithFields(log.Fields{"timezone": tz, "err": err}).Panic("time.LoadLocation failed")
		}
	}

	// init mongo client
	context.Info("init mongo")
	mongoCfg := mongoclient.Config{}
	if err := viper.UnmarshalKey("mongo", &mongoCfg); err != nil {
		context.WithField("err", err).Panic("viper.UnmarshalKey mongo failed")
	}
	mongoClient := mongoclient.MustConnectMongoClient(mongoCfg)
	q := query.New(mongoClient)

	// init Redis service
	context.Info("init redis cache")
	redisCfg := redisclient.Config{}
	if err := viper.UnmarshalKey("redis_cache", &redisCfg); err != nil {
		context.WithField("err", err).Panic("viper.UnmarshalKey redis_cache failed")
	}
	redisCacheName := viper.GetString("redis_cache.name")
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisclient.MustConnectRedis(redisCfg),
	})

	localCache := primitive.NewPrimitive("local", viper.GetInt("cache.localSizeMB"))
	sharedCache := redisProvider.NewRedis(redisCache)
	pageCache := cache.New(cache.ServiceConfig{
		Ttl:   viper.GetDuration("cache.pageTtl"),
		Pfx:   keys.PfxListingPage,
		Cache: compound.NewCompound([]provider.Provider{localCache, redisProvider.NewRedisZip(redisCache)}),
	})

	// init chain service
	chainId := domain.ChainId(viper.GetInt32("network.chainId"))
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls:            map[int32]string{int32(chainId): viper.GetString("network.rpcUrl")},
		MaxConcurrentCalls: viper.GetInt("network.maxConcurrentCalls"),
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}
	var reader listing.ContractReader
	if err == nil {
		reader = contract.NewListing(chainService, chainId)
	}

	// notices go to the session store, the log and discord
	notifiers := []listing.Notifier{notify.NewLogNotifier()}
	if token := viper.GetString("discord.token"); token != "" {
		discord, err := notify.NewDiscordNotifier(notify.DiscordCfg{
			BotKey:    token,
			ChannelId: viper.GetString("discord.channelId"),
			MinLevel:  listing.NoticeLevel(viper.GetString("discord.minLevel")),
		})
		if err != nil {
			context.WithField("err", err).Warn("notify.NewDiscordNotifier failed")
		} else {
			notifiers = append(notifiers, discord)
		}
	}

	// construct repository, usecase and delivery
	anftRepo := anft.NewClient(&anft.ClientCfg{
		HttpClient: http.Client{},
		BaseUrl:    viper.GetString("anft.baseUrl"),
		Timeout:    viper.GetDuration("anft.timeout"),
		RateLimit:  viper.GetFloat64("anft.rateLimit"),
		Cache: cache.New(cache.ServiceConfig{
			Ttl:   viper.GetDuration("anft.cacheTtl"),
			Pfx:   "listing",
			Cache: compound.NewCompound([]provider.Provider{localCache, sharedCache}),
		}),
	})
	hcRepo := hc_repo.New(q, redisCache, chainService, chainId)
	filterRepo := listing_repository.NewFilterStateRepo(q)

	reg := session.NewRegistry()
	listingUsecase := listing_usecase.NewUsecase(&listing_usecase.UsecaseCfg{
		Repo:     anftRepo,
		Reader:   reader,
		Notifier: session.NewNotifier(reg, notify.Multi(notifiers...)),
		Workers:  viper.GetInt("network.maxConcurrentCalls"),
		Pages:    pageCache,
	})

	sessionCfg := session.DefaultConfig()
	if err := viper.UnmarshalKey("session", &sessionCfg); err != nil {
		context.WithField("err", err).Panic("viper.UnmarshalKey session failed")
	}
	sessions := session.NewManager(reg, listingUsecase, filterRepo, sessionCfg)
	go sessions.Run(context)

	hc := hc_usecase.New(hcRepo)

	hc_delivery.New(e, hc)
	listing_delivery.New(e, listing_delivery.HandlerCfg{
		UseCase:     listingUsecase,
		Sessions:    sessions,
		Location:    loc,
		WaitTimeout: viper.GetDuration("http.waitTimeout"),
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		if err := e.Start(viper.GetString("serverAddress")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	cancel()
	ctx, stop := ctx.WithTimeout(ctx.Background(), 10*time.Second)
	defer stop()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
