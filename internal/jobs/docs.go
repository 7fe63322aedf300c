// Package jobs provides scheduled background tasks for the storefront.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations that must not sit on the request path.
//
// # Available Jobs
//
// 1. CartMirrorJob - Periodically pushes a snapshot of every live session's
// cart to the remote cart store.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(sessions, mirror, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Mirroring is best effort and never authoritative: a failed push for one
// session is logged and retried on the next run, and the local cart stays
// the source of truth. Cart mutations and order submissions never wait on
// the mirror.
package jobs
