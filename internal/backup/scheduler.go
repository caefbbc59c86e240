package backup

import (
	"errors"
	"os"
	"path/filepath"
	"portfolio/internal/providers"
	"portfolio/internal/structures"
	"sync"
	"time"

	"github.com/roylee0704/gron"
)

var ErrNoBackup = errors.New("no backup found")

type SchedulerInterface interface {
	Init()
	Stop()
	Restore() error
	Persist() error
}

type Scheduler struct {
	config   *structures.Config
	logger   providers.Logger
	snapshot *SnapshotManager
	cron     *gron.Cron
	opsMu    sync.Mutex
	now      func() time.Time
}

func (s *Scheduler) Init() {
	if !s.config.Backup.Enabled {
		s.logger.Infof(providers.TypeApp, "Backups disabled")
		return
	}

	s.cron = gron.New()
	s.cron.AddFunc(gron.Every(s.config.Backup.Interval), func() {
		_ = s.Persist()
	})
	s.cron.Start()
	s.logger.Infof(providers.TypeApp, "Backups every %s into %s", s.config.Backup.Interval, s.config.Backup.Dir)
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Restore applies the newest backup in the backup directory.
func (s *Scheduler) Restore() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	files, err := s.snapshot.List(s.config.Backup.Dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return ErrNoBackup
	}
	return s.snapshot.LoadFromFile(files[len(files)-1])
}

// Persist writes a new backup and prunes old ones.
func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	dir := s.config.Backup.Dir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while creating backup dir: %s", err)
		return err
	}

	fileName := filepath.Join(dir, filePrefix+s.now().UTC().Format("20060102-150405.000")+fileSuffix)
	if err := s.snapshot.SaveToFile(fileName); err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting backup: %s", err)
		return err
	}
	s.logger.Infof(providers.TypeApp, "Persisted backup to file %s", fileName)

	if err := s.snapshot.Prune(dir, s.config.Backup.Keep); err != nil {
		s.logger.Warnf(providers.TypeApp, "Unable to prune old backups: %s", err)
	}
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, snapshot *SnapshotManager) SchedulerInterface {
	return &Scheduler{
		config:   config,
		logger:   logger,
		snapshot: snapshot,
		now:      time.Now,
	}
}
