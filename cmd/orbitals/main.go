package main

import (
	"errors"
	"flag"
	"hartree-fock/internal/app"
	"hartree-fock/internal/infrastructure"
	"os"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cli := infrastructure.NewCommandLine(os.Args[0])
	if err := cli.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	// Инициализация логгера
	logger := initLogger("info")
	defer logger.Sync()

	// Чтение конфигурации
	configReader := infrastructure.NewYAMLConfigReader(logger)
	config, err := configReader.ReadConfig(cli.ConfigPath)
	if err != nil {
		logger.Fatal("Failed to read config", zap.Error(err))
	}
	cli.Apply(config)

	if err := infrastructure.Validate(config); err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	// Обновляем уровень логирования
	if config.LogFile != "" {
		logger = initLogger(config.LogLevel, config.LogFile)
	} else {
		logger = initLogger(config.LogLevel)
	}

	sampler := app.NewOrbitalSampler(logger, config)
	writer := infrastructure.NewTXTTableWriter(logger)

	logger.Info("Sampling orbitals",
		zap.Float64("start", config.Start),
		zap.Float64("stop", config.Stop),
		zap.Int("points", config.Points),
		zap.Float64("zeta", config.Zeta),
		zap.Strings("basis", config.Basis))

	table, err := sampler.Sample()
	if err != nil {
		logger.Fatal("Failed to sample orbitals", zap.Error(err))
	}

	fmtValue := func(val float64) string {
		return strconv.FormatFloat(val, 'f', config.Decimals, 64)
	}

	if err := writer.WriteTable(os.Stdout, table, fmtValue); err != nil {
		logger.Fatal("Failed to write table", zap.Error(err))
	}

	logger.Info("Sampling completed successfully", zap.Int("rows", table.Rows()))
}

// initLogger initializes the logger with the specified level and log file name.
// Without a log file, logs go to stderr so stdout carries only the table.
func initLogger(level string, logfileName ...string) *zap.Logger {
	config := zap.NewProductionConfig()

	switch level {
	case "debug":
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "warn":
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		config.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	outputPath := []string{"stderr"}
	if len(logfileName) > 0 {
		outputPath = logfileName
	}

	config.OutputPaths = outputPath
	config.ErrorOutputPaths = outputPath
	config.EncoderConfig.TimeKey = "t"
	config.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	config.DisableCaller = false

	logger, err := config.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
