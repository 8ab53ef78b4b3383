package root

import (
	"context"

	"github.com/ashutosh-gunjal-001/gamified-daily-task-manager/internal/config"
	"github.com/ashutosh-gunjal-001/gamified-daily-task-manager/internal/engine"
	"github.com/ashutosh-gunjal-001/gamified-daily-task-manager/internal/storage"
)

func openService(ctx context.Context) (*engine.Service, func(), error) {
	cfgPath, err := config.DefaultPath()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}
	log := cfg.NewLogger()

	dbPath, err := cfg.StorePath(storage.DefaultDBPath)
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, dbPath)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}

	svc, err := engine.NewService(ctx, storage.NewStore(db, log), log)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return svc, cleanup, nil
}
