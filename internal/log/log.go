package log

import (
	"fmt"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// New создает production-логгер с выводом в stderr и указанным уровнем.
func New(level string) (*zap.Logger, error) {
	const op = "initializing logger"

	lvl, err := zap.ParseAtomicLevel(level)

	if err != nil {
		return nil, errorf(op, err)
	}

	config := zap.NewProductionConfig()
	config.Level = lvl
	config.OutputPaths = []string{"stderr"}
	logger, err := config.Build()

	if err != nil {
		return nil, errorf(op, err)
	}

	return logger, nil
}

func errorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// ResponseLogger возвращает обработчик resty, который пишет в лог каждый ответ.
func ResponseLogger(logger *zap.Logger) resty.ResponseMiddleware {
	return func(_ *resty.Client, r *resty.Response) error {
		logger.Debug("http response",
			zap.String("uri", r.Request.URL),
			zap.String("method", r.Request.Method),
			zap.Int("status", r.StatusCode()),
			zap.Duration("duration", r.Time()),
			zap.Int64("size", r.Size()),
		)
		return nil
	}
}
