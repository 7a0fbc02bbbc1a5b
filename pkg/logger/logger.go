// Package logger inicializa el logger global zap del proceso.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup construye el logger y lo instala como global (zap.L / zap.S).
// Si filename no está vacío, además del stdout escribe JSON a un archivo
// con rotación.
func Setup(level string, filename string) *zap.Logger {
	lvl := zapcore.InfoLevel
	if err := lvl.Set(level); err != nil {
		lvl = zapcore.InfoLevel
	}

	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(os.Stdout),
		lvl,
	)

	var core zapcore.Core = consoleCore
	if filename != "" {
		fileSink := &lumberjack.Logger{
			Filename:   filename,
			MaxSize:    100, // MB
			MaxBackups: 3,
			MaxAge:     7, // días
		}
		core = zapcore.NewTee(
			consoleCore,
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(fileSink),
				lvl,
			),
		)
	}

	log := zap.New(core, zap.AddCaller())
	zap.ReplaceGlobals(log)
	return log
}
