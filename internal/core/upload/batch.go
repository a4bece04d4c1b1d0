package upload

import (
	"context"
	"fmt"

	"gomarket_sync/internal/core/transform"
)

// SendFunc отправляет одну пачку записей на площадку.
type SendFunc[T any] func(ctx context.Context, batch []T) error

// InBatches отправляет items пачками по size штук, строго последовательно.
// Первая ошибка прерывает выгрузку; возвращается число успешно отправленных пачек.
func InBatches[T any](ctx context.Context, items []T, size int, send SendFunc[T]) (int, error) {
	sent := 0
	for i, batch := range transform.Divide(items, size) {
		if err := ctx.Err(); err != nil {
			return sent, err
		}
		if err := send(ctx, batch); err != nil {
			return sent, fmt.Errorf("batch %d (%d items): %w", i+1, len(batch), err)
		}
		sent++
	}
	return sent, nil
}
