package ports

import "context"

// BackgroundWorker — фоновый компонент приложения, живущий столько же, сколько HTTP-сервер.
type BackgroundWorker interface {
	Run(ctx context.Context) error
	Close() error
}
