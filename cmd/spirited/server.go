package main

import (
	"context"
	"time"

	"github.com/AndrewMorgan2/Spritied-Towards/internal/service"
	"github.com/AndrewMorgan2/Spritied-Towards/internal/storage"
)

// startJanitor periodically prunes sessions nobody has touched within the
// configured TTL.
func startJanitor(ctx context.Context, repo storage.Repository, ttl time.Duration) {
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				service.CleanupStaleSessions(repo, ttl)
			}
		}
	}()
}
