// Package pipeline runs one generate, export and report pass for each
// record kind.
package pipeline

import (
	"errors"
	"io"
	"log"
	"os"
	"time"

	"bizscan/internal/config"
	"bizscan/internal/report"
	"bizscan/internal/scrape"
	"bizscan/internal/scrape/util"

	"github.com/google/uuid"
)

// Env holds the per-invocation settings shared by every pipeline.
type Env struct {
	// Out receives rendered reports. Defaults to os.Stdout.
	Out io.Writer
	Now func() time.Time
	// Seed overrides the configured seed when non-zero.
	Seed uint64
	// DataDir overrides the configured data directory when non-empty.
	DataDir string
	NoDelay bool
}

// Result describes one pipeline run.
type Result struct {
	RunID   string
	Records int
	// Path is the exported artifact, empty when nothing was written.
	Path   string
	Report report.Report
}

func (e Env) out() io.Writer {
	if e.Out == nil {
		return os.Stdout
	}
	return e.Out
}

func (e Env) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// apply folds the env overrides into a pipeline's run config.
func (e Env) apply(rc config.RunConfig) config.RunConfig {
	if e.Seed != 0 {
		rc.Seed = e.Seed
	}
	if e.DataDir != "" {
		rc.DataDir = e.DataDir
	}
	return rc
}

func (e Env) generator(rc config.RunConfig) *scrape.Generator {
	pacer := util.PacerFromMillis(rc.DelayMinMS, rc.DelayMaxMS)
	if e.NoDelay {
		pacer = util.NoPacing()
	}
	g := scrape.NewGenerator(rc.Seed, pacer)
	g.Now = e.now
	return g
}

func newRunID() string {
	return uuid.NewString()
}

// present renders r, or logs why there is nothing to render.
func present(e Env, tag string, r report.Report, err error) error {
	if errors.Is(err, report.ErrNoRecords) {
		log.Printf("[%s] no data available for report", tag)
		return nil
	}
	if err != nil {
		return err
	}
	report.Render(e.out(), r)
	return nil
}
