package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"deal_factory/internal/domain"
	"deal_factory/internal/domain/entity"
	"deal_factory/pkg/logx"
)

const (
	DefaultScanInterval = 15 * time.Minute
	notifiedTTL         = 24 * time.Hour
)

type Analyzer interface {
	AnalyzeAll(ctx context.Context) (entity.AnalysisResult, error)
	HotDeals(ctx context.Context) ([]entity.Property, error)
}

// Scanner периодически пересчитывает скоринг и отдаёт новые горячие сделки в канал.
type Scanner struct {
	analyzer Analyzer
	deals    chan<- entity.Property
	interval time.Duration
	notified *cache.Cache
	zipCodes []string

	mu         sync.Mutex
	cancelFunc context.CancelFunc
	isRunning  bool
	wg         sync.WaitGroup
}

func NewScanner(analyzer Analyzer, deals chan<- entity.Property, interval time.Duration) *Scanner {
	if interval <= 0 {
		interval = DefaultScanInterval
	}

	return &Scanner{
		analyzer: analyzer,
		deals:    deals,
		interval: interval,
		notified: cache.New(notifiedTTL, time.Hour),
	}
}

func (w *Scanner) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isRunning {
		return errors.New("scanner is already running")
	}

	scanCtx, cancel := context.WithCancel(ctx)
	w.cancelFunc = cancel
	w.isRunning = true

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() {
			w.mu.Lock()
			w.isRunning = false
			w.cancelFunc = nil
			w.mu.Unlock()
		}()

		if err := w.Run(scanCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger(ctx).Error("scanner stopped with error", logx.Error(err))
		}
	}()

	return nil
}

func (w *Scanner) Stop() {
	w.mu.Lock()

	if !w.isRunning {
		w.mu.Unlock()
		return
	}

	if w.cancelFunc != nil {
		w.cancelFunc()
	}
	w.mu.Unlock()

	w.wg.Wait()
}

func (w *Scanner) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.isRunning
}

func (w *Scanner) Interval() time.Duration {
	return w.interval
}

// Run первый проход сразу, дальше по таймеру.
func (w *Scanner) Run(ctx context.Context) error {
	logger(ctx).Info("scanner started", "interval", w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		if _, err := w.ScanOnce(ctx); err != nil {
			if ctx.Err() != nil {
				break
			}
			logger(ctx).Error("scan failed", logx.Error(err))
		}

		select {
		case <-ctx.Done():
			logger(ctx).Info("scanner stopped")
			return ctx.Err()
		case <-ticker.C:
		}
	}

	logger(ctx).Info("scanner stopped")
	return ctx.Err()
}

// ScanOnce возвращает число отправленных сделок. Об одной сделке сообщаем не чаще раза в сутки.
func (w *Scanner) ScanOnce(ctx context.Context) (int, error) {
	if _, err := w.analyzer.AnalyzeAll(ctx); err != nil {
		if errors.Is(err, domain.ErrNoProperties) {
			return 0, nil
		}
		return 0, err
	}

	hot, err := w.analyzer.HotDeals(ctx)
	if err != nil {
		return 0, err
	}

	var sent int

	for _, p := range hot {
		if !w.Watched(p.ZipCode) {
			continue
		}

		if _, found := w.notified.Get(p.ID); found {
			continue
		}

		select {
		case w.deals <- p:
		case <-ctx.Done():
			return sent, ctx.Err()
		}

		w.notified.Set(p.ID, struct{}{}, cache.DefaultExpiration)
		sent++
	}

	if sent > 0 {
		logger(ctx).Info("scan cycle completed", logx.FieldCount, sent)
	}

	return sent, nil
}
