package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"time"

	"github.com/918apps/indiwtfcheck/internal/adapters/checker"
	"github.com/918apps/indiwtfcheck/internal/adapters/handler"
	"github.com/918apps/indiwtfcheck/internal/adapters/sender"
	"github.com/918apps/indiwtfcheck/internal/adapters/store"
	"github.com/918apps/indiwtfcheck/internal/core/domain"
	"github.com/918apps/indiwtfcheck/internal/core/domain/commands"
	"github.com/918apps/indiwtfcheck/internal/core/service"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func main() {
	log.Info().Msg("starting indiwtfcheck...")

	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("toml")
	setDefaults()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal().Err(err).Msg("could not read config file")
		}
		log.Info().Msg("no config file found, using defaults and environment")
	}

	_ = viper.BindEnv("telegram.bot_token", "TELEGRAM_TOKEN")
	_ = viper.BindEnv("indiwtf.api_token", "INDIWTF_TOKEN")

	var logLevel zerolog.Level

	switch viper.GetString("bot.log_level") {
	case "info":
		logLevel = zerolog.InfoLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	botToken := viper.GetString("telegram.bot_token")
	apiToken := viper.GetString("indiwtf.api_token")
	if botToken == "" || apiToken == "" {
		log.Fatal().Msg("missing TELEGRAM_TOKEN or INDIWTF_TOKEN")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	opts := []bot.Option{
		bot.WithDefaultHandler(noOpHandler),
	}

	b, err := bot.New(botToken, opts...)
	if err != nil {
		log.Panic().Err(err).Msg("failed initializing telegram bot")
	}

	s := sender.NewTelegram(b)
	watchlist := store.NewJSONFile(viper.GetString("watchlist.path"))
	indiwtf := checker.NewIndiwtf(viper.GetString("indiwtf.base_url"), apiToken,
		mustDuration("indiwtf.timeout"))

	commandRegistry := &domain.CommandRegistry{}
	commandRegistry.Register(commands.NewStartHandler(watchlist, s, "/start"))
	commandRegistry.Register(commands.NewAddHandler(watchlist, s, "/add"))
	commandRegistry.Register(commands.NewRemoveHandler(watchlist, s, "/remove"))
	commandRegistry.Register(commands.NewListHandler(watchlist, s, "/list"))
	commandRegistry.Register(commands.NewCheckHandler(indiwtf, s, "/check"))

	commandHandler := handler.NewCommandHandler(commandRegistry, mustDuration("handler.timeout"))

	b.RegisterHandler(bot.HandlerTypeMessageText, "/", bot.MatchTypePrefix, commandHandler.Handle)

	reporter := service.NewReporter(watchlist, indiwtf, s,
		mustDuration("report.interval"),
		mustDuration("report.initial_delay"),
		mustDuration("report.lookup_delay"))
	go reporter.Run(ctx)

	log.Info().Msg("bot listening")
	b.Start(ctx)
}

func setDefaults() {
	viper.SetDefault("bot.log_level", "info")
	viper.SetDefault("watchlist.path", "domains.json")
	viper.SetDefault("indiwtf.base_url", "https://indiwtf.com/api")
	viper.SetDefault("indiwtf.timeout", "10s")
	viper.SetDefault("handler.timeout", "1m")
	viper.SetDefault("report.interval", "30m")
	viper.SetDefault("report.initial_delay", "10s")
	viper.SetDefault("report.lookup_delay", "1s")
}

func mustDuration(key string) time.Duration {
	d, err := time.ParseDuration(viper.GetString(key))
	if err != nil {
		log.Panic().Err(err).Str("key", key).Msg("invalid duration in config")
	}

	return d
}

func noOpHandler(_ context.Context, _ *bot.Bot, _ *models.Update) {}
