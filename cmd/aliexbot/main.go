package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"sahimarket.com/aliexbot/pkg/aliexpress"
	"sahimarket.com/aliexbot/pkg/aliexpress/client"
	"sahimarket.com/aliexbot/pkg/botservice"
	"sahimarket.com/aliexbot/pkg/botservice/config"
	"sahimarket.com/aliexbot/pkg/format"
	"sahimarket.com/aliexbot/pkg/linkparser"
)

const (
	ConfigDefault = "config/config.yaml"
	ConfigUsage   = "path to the yaml config file"
)

var (
	configFlag string
	// BuildTime will be populated by the linker to tell builds apart after they were shipped
	BuildTime string
)

func init() {
	flag.StringVar(&configFlag, "config", ConfigDefault, ConfigUsage)
}

func main() {
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{
		DisableColors: false,
		FullTimestamp: true,
	})

	log.WithFields(
		log.Fields{
			"Image Built on": BuildTime,
			"Started at":     time.Now().UTC(),
		},
	).Println("Application Started")

	cfg, err := config.New(configFlag)
	if err != nil {
		log.Fatalf("%v", err)
	}

	key, secret, session, err := cfg.GetAPI()
	if err != nil {
		log.Fatalf("%v", err)
	}

	conn, err := client.NewConnection(
		key,
		secret,
		session,
		cfg.API.BaseURL,
		cfg.API.Currency,
		cfg.API.Language,
		cfg.API.ShipToCountry,
	)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if conn.Authenticated() {
		log.Println("Session token present, using keyed detail endpoints")
	} else {
		log.Println("No session token, using public search endpoints only")
	}

	pipeline := botservice.NewPipeline(
		linkparser.New(),
		aliexpress.NewService(conn, cfg.API.PageSize),
		format.New(cfg.API.TaxRate, cfg.Bot.DestinationLabel),
	)

	token, err := cfg.GetTelegram()
	if err != nil {
		log.Fatalf("%v", err)
	}

	bot, err := botservice.NewBot(token, pipeline)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = bot.Run(ctx); err != nil && err != context.Canceled {
		log.Fatalf("%v", err)
	}

	log.Println("Bot stopped")
}
