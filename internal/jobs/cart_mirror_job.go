package jobs

import (
	"context"
	"log/slog"

	"neushop/internal/core/domain/model/cart"
	"neushop/internal/core/domain/model/kernel"
	"neushop/internal/core/domain/model/session"
	"neushop/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// CartMirrorJob periodically copies every live session's cart to the remote
// cart store. Snapshots are taken under the session lock; the pushes happen
// afterwards so slow mirror calls never block shoppers.
type CartMirrorJob struct {
	sessions ports.SessionStore
	mirror   ports.CartMirror
	cron     *cron.Cron
	logger   *slog.Logger
}

// cartSnapshot pairs a session with its lines at snapshot time.
type cartSnapshot struct {
	sessionID kernel.UUID
	lines     []cart.Line
}

// NewCartMirrorJob creates a job mirroring carts every ten seconds.
func NewCartMirrorJob(sessions ports.SessionStore, mirror ports.CartMirror, logger *slog.Logger) *CartMirrorJob {
	return &CartMirrorJob{
		sessions: sessions,
		mirror:   mirror,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "cart_mirror_job"),
	}
}

// Start begins the cart mirror job to run every ten seconds.
func (j *CartMirrorJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cart mirror job started (running every ten seconds)")
	return nil
}

// Stop stops the cart mirror job.
func (j *CartMirrorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cart mirror job stopped")
}

func (j *CartMirrorJob) run() {
	ctx := context.Background()

	snapshots := make([]cartSnapshot, 0)
	err := j.sessions.Range(ctx, func(s *session.Session) error {
		snapshots = append(snapshots, cartSnapshot{
			sessionID: s.ID(),
			lines:     s.Cart().Lines(),
		})
		return nil
	})
	if err != nil {
		j.logger.ErrorContext(ctx, "Cart mirror snapshot failed", "error", err)
		return
	}

	for _, snapshot := range snapshots {
		if err = j.mirror.MirrorCart(ctx, snapshot.sessionID, snapshot.lines); err != nil {
			j.logger.WarnContext(ctx, "Cart mirror push failed",
				"sessionID", snapshot.sessionID.String(),
				"error", err,
			)
		}
	}
}
