package reports

import (
	"context"
	"fmt"
	"sync"
	"time"

	"rentdesk/internal/models"
	"rentdesk/internal/store"
	"rentdesk/internal/views"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

// Recorder 将当前状态的报表数据记录为快照
type Recorder struct {
	store *store.Store
	repo  Repository
	clock func() time.Time
}

// NewRecorder 创建快照记录器
func NewRecorder(s *store.Store, repo Repository) *Recorder {
	return &Recorder{store: s, repo: repo, clock: time.Now}
}

// Record 立即记录一次快照，周期标签为月份缩写（如 "Nov"）
func (r *Recorder) Record(ctx context.Context) (models.ReportSnapshot, error) {
	now := r.clock()
	snap := models.ReportSnapshot{
		TakenAt: now,
		Period:  now.Format("Jan"),
		Figures: datatypes.NewJSONType(views.Figures(r.store.Snapshot())),
	}
	if err := r.repo.Save(ctx, &snap); err != nil {
		return models.ReportSnapshot{}, fmt.Errorf("保存报表快照失败: %w", err)
	}
	return snap, nil
}

// Trend 最近的快照，用于报表趋势
func (r *Recorder) Trend(ctx context.Context, limit int) ([]models.ReportSnapshot, error) {
	return r.repo.Recent(ctx, limit)
}

// Scheduler 报表快照定时任务
type Scheduler struct {
	recorder *Recorder
	cron     *cron.Cron
	log      *logrus.Logger
	mu       sync.Mutex
	running  bool
}

// NewScheduler 创建调度器
func NewScheduler(recorder *Recorder, log *logrus.Logger) *Scheduler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Scheduler{recorder: recorder, cron: cron.New(), log: log}
}

// Start 按 cron 表达式启动定时快照；表达式为空时不启动
func (s *Scheduler) Start(spec string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running || spec == "" {
		return nil
	}
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return fmt.Errorf("无效的快照计划 %q: %w", spec, err)
	}
	s.cron.Start()
	s.running = true
	s.log.WithField("spec", spec).Info("报表快照调度器启动成功")
	return nil
}

// Stop 停止调度器并等待正在执行的任务结束
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.cron = cron.New()
	s.running = false
	s.log.Info("报表快照调度器已停止")
}

// Running 是否运行中
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	snap, err := s.recorder.Record(ctx)
	if err != nil {
		s.log.WithError(err).Error("记录报表快照失败")
		return
	}
	s.log.WithFields(logrus.Fields{
		"snapshot_id": snap.ID,
		"period":      snap.Period,
	}).Info("报表快照已记录")
}
