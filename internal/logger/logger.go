package logger

import (
	"os"
	"time"

	"Carteira/config"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	log = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// Init configura o logger global de acordo com o ambiente.
// Em desenvolvimento usa saída legível no console; em produção, JSON.
func Init(cfg *config.Config) {
	level := zerolog.InfoLevel
	if !cfg.IsProduction() {
		level = zerolog.DebugLevel
	}

	var out zerolog.Logger
	if cfg.IsProduction() {
		out = zerolog.New(os.Stdout)
	} else {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	log = out.Level(level).With().
		Timestamp().
		Str("app", cfg.App.Name).
		Logger()
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Error() *zerolog.Event {
	return log.Error()
}

func Fatal() *zerolog.Event {
	return log.Fatal()
}
