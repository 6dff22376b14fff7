package downloader

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// ProgressConfig controls the batch progress bar.
type ProgressConfig struct {
	Enabled bool
	Writer  io.Writer
}

type ProgressManager struct {
	container *mpb.Progress
	enabled   bool
	mu        sync.Mutex
}

type ProgressBar struct {
	bar     *mpb.Bar
	enabled bool
}

func NewProgressManager(config ProgressConfig) *ProgressManager {
	if !config.Enabled {
		return &ProgressManager{enabled: false}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	container := mpb.New(
		mpb.WithOutput(writer),
		mpb.WithRefreshRate(120*time.Millisecond),
		mpb.WithWaitGroup(&sync.WaitGroup{}),
	)

	return &ProgressManager{
		container: container,
		enabled:   true,
	}
}

func (pm *ProgressManager) CreateBar(total int, description string) *ProgressBar {
	if !pm.enabled || pm.container == nil {
		return &ProgressBar{enabled: false}
	}

	pm.mu.Lock()
	defer pm.mu.Unlock()

	bar := pm.container.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(description+" ", decor.WC{W: len(description) + 1, C: decor.DindentRight}),
			decor.CountersNoUnit("(%d/%d)", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.NewPercentage("%.1f", decor.WCSyncSpace),
			decor.OnComplete(
				decor.EwmaETA(decor.ET_STYLE_GO, 30, decor.WCSyncWidth), " ✓ ",
			),
		),
	)

	return &ProgressBar{
		bar:     bar,
		enabled: true,
	}
}

func (pb *ProgressBar) Increment() {
	if pb.enabled && pb.bar != nil {
		pb.bar.Increment()
	}
}

// Complete marks the bar finished at its current position. Needed when a
// batch stops early, otherwise Wait would block on the unfinished bar.
func (pb *ProgressBar) Complete() {
	if pb.enabled && pb.bar != nil {
		pb.bar.SetTotal(pb.bar.Current(), true)
	}
}

func (pm *ProgressManager) Wait() {
	if pm.enabled && pm.container != nil {
		pm.container.Wait()
	}
}

func (pm *ProgressManager) Shutdown() {
	if pm.enabled && pm.container != nil {
		pm.container.Shutdown()
	}
}

func IsTTY(writer io.Writer) bool {
	if writer == nil {
		return false
	}

	if file, ok := writer.(*os.File); ok {
		stat, err := file.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

// ShouldShowProgress reports whether a progress bar makes sense for the
// current run: either forced on, or stderr/stdout is a terminal.
func ShouldShowProgress(forced bool) bool {
	if forced {
		return true
	}

	return IsTTY(os.Stderr) || IsTTY(os.Stdout)
}
