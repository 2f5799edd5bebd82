package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jtr6/invisible-light/constants"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger zerolog.Logger

func init() {
	// console-only logger until Init wires the file sink
	console := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	logger = zerolog.New(console).With().Timestamp().Logger()
}

// Init attaches the rotated file sink under the configured folder.
// Requires CONFIG_FOLDER to be set in viper beforehand.
func Init() {
	logsDir := filepath.Join(viper.GetString(constants.ConfigFolder), "logs")
	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(logsDir, fmt.Sprintf("catalogue_%d.log", time.Now().Unix())),
		MaxSize:    100, // MB
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}
	console := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	logger = zerolog.New(zerolog.MultiLevelWriter(console, fileWriter)).With().Timestamp().Logger()
}

func Debug(v ...any) {
	logger.Debug().Msg(fmt.Sprint(v...))
}

func Debugf(format string, v ...any) {
	logger.Debug().Msgf(format, v...)
}

func Info(v ...any) {
	logger.Info().Msg(fmt.Sprint(v...))
}

func Infof(format string, v ...any) {
	logger.Info().Msgf(format, v...)
}

func Warn(v ...any) {
	logger.Warn().Msg(fmt.Sprint(v...))
}

func Warnf(format string, v ...any) {
	logger.Warn().Msgf(format, v...)
}

func Error(v ...any) {
	logger.Error().Msg(fmt.Sprint(v...))
}

func Errorf(format string, v ...any) {
	logger.Error().Msgf(format, v...)
}

func Fatal(v ...any) {
	logger.Fatal().Msg(fmt.Sprint(v...))
}

func Fatalf(format string, v ...any) {
	logger.Fatal().Msgf(format, v...)
}
