package cron

import log "log/slog"

func InitCron(mgr *Manager) error {
	log.Info("Cron Jobs starting...")
	if err := mgr.RegisterJobs(); err != nil {
		return err
	}
	mgr.Start()

	// Warm the snapshot once at boot instead of waiting for the first tick.
	go mgr.tagCacheJob.Run()

	return nil
}
