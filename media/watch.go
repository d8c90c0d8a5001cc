// SPDX-License-Identifier: EPL-2.0

package media

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Watch mounts card whenever its root directory exists and unmounts it
// when the directory goes away. It polls every interval until ctx is
// done.
func Watch(ctx context.Context, card *Card, interval time.Duration, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		syncMount(card, logger)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func syncMount(card *Card, logger *slog.Logger) {
	present := rootPresent(card.Root())

	switch {
	case present && !card.IsMounted():
		if err := card.Mount(); err != nil {
			logger.Warn("media: mount failed", "root", card.Root(), "err", err)
		}
	case !present && card.IsMounted():
		card.Unmount()
	}
}

func rootPresent(root string) bool {
	fi, err := os.Stat(root)
	return err == nil && fi.IsDir()
}
