// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/spotted-relay/internal/logger"
	"github.com/MKhiriev/spotted-relay/internal/store"
)

// UploadSweeper periodically removes temporary upload files older than a
// cutoff. Requests clean up their own files; the sweeper only catches what
// a killed process left behind.
type UploadSweeper struct {
	sweeper    store.StaleUploadSweeper
	interval   time.Duration
	staleAfter time.Duration

	logger *logger.Logger
}

func NewUploadSweeper(sweeper store.StaleUploadSweeper, interval, staleAfter time.Duration, logger *logger.Logger) *UploadSweeper {
	return &UploadSweeper{
		sweeper:    sweeper,
		interval:   interval,
		staleAfter: staleAfter,
		logger:     logger,
	}
}

// Run sweeps once immediately and then on every tick until ctx is done.
func (u *UploadSweeper) Run(ctx context.Context) {
	if u.interval <= 0 {
		return
	}

	u.sweep(ctx)

	ticker := time.NewTicker(u.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			u.sweep(ctx)
		}
	}
}

func (u *UploadSweeper) sweep(ctx context.Context) {
	removed, err := u.sweeper.SweepStale(ctx, u.staleAfter)
	if err != nil && ctx.Err() == nil {
		u.logger.Err(err).Str("func", "*UploadSweeper.sweep").Msg("failed to sweep stale uploads")
		return
	}
	if removed > 0 {
		u.logger.Info().Int("removed", removed).Msg("removed stale temp uploads")
	}
}
