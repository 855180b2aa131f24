// Package session owns the interactive analysis state: the currently loaded
// transaction table and the collaborators every user operation touches. Each
// operation runs to completion before the next; there is exactly one logical
// actor, so no locking.
package session

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/Hyunseung-Nam/excel-statement-analyzer/internal/analysis"
	"github.com/Hyunseung-Nam/excel-statement-analyzer/internal/chart"
	"github.com/Hyunseung-Nam/excel-statement-analyzer/internal/config"
	"github.com/Hyunseung-Nam/excel-statement-analyzer/internal/domain"
	"github.com/Hyunseung-Nam/excel-statement-analyzer/internal/export"
	"github.com/Hyunseung-Nam/excel-statement-analyzer/internal/pipeline"
	"github.com/Hyunseung-Nam/excel-statement-analyzer/internal/recentfiles"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ReadFunc loads a raw table from a statement file. The default is the xlsx
// reader; tests inject their own.
type ReadFunc func(path string) (*domain.RawTable, error)

// ErrAnalysisFailed is the generic message surfaced when an operation hits
// an unexpected panic. Details go to the log, not the user.
var ErrAnalysisFailed = errors.New("analysis failed unexpectedly, see log for details")

// Session is the single-user analysis session.
type Session struct {
	cfg        *config.Config
	classifier *analysis.Classifier
	log        zerolog.Logger
	read       ReadFunc
	recent     *recentfiles.List
	writer     *export.Writer

	table *domain.Table
	path  string
}

// New builds a session. rules must already be validated.
func New(cfg *config.Config, rules domain.RuleSet, log zerolog.Logger, read ReadFunc) *Session {
	return &Session{
		cfg:        cfg,
		classifier: analysis.NewClassifier(rules),
		log:        log,
		read:       read,
		recent:     recentfiles.Load(cfg.RecentPath),
		writer:     export.NewWriter(cfg.ExportDir),
	}
}

// Table returns the current transaction table, nil before the first load.
func (s *Session) Table() *domain.Table {
	return s.table
}

// RecentPaths lists usable entries from the recent-files sidecar, most
// recent first.
func (s *Session) RecentPaths() []string {
	return s.recent.Paths()
}

// QuickKeywords returns the configured keyword shortcuts shown when the user
// forgets to pass one.
func (s *Session) QuickKeywords() []string {
	return s.cfg.QuickKeywords
}

// Load ingests the statement at path and replaces the session table
// wholesale. On any failure the previous table stays usable. A successful
// load pushes the path onto the recent-files list.
func (s *Session) Load(path string) (err error) {
	log := s.opLogger("load")
	defer s.recover("load", &err)

	raw, err := s.read(path)
	if err != nil {
		log.Error().Err(err).Str("file", path).Msg("statement load failed")
		return err
	}

	table, err := pipeline.Build(raw, pipeline.Options{
		MerchantColumn: s.cfg.MerchantColumn,
		AmountColumn:   s.cfg.AmountColumn,
		DateMarkers:    s.cfg.DateMarkers,
		Sentinels:      s.cfg.Sentinels,
	})
	if err != nil {
		var missing *domain.MissingColumnError
		if errors.As(err, &missing) {
			log.Error().Str("file", path).Str("column", missing.Column).Msg("required column missing")
		} else {
			log.Error().Err(err).Str("file", path).Msg("statement preprocessing failed")
		}
		return err
	}

	s.table = table
	s.path = path

	s.recent.Add(path)
	if saveErr := s.recent.Save(); saveErr != nil {
		// Losing the sidecar must not fail the load.
		log.Warn().Err(saveErr).Msg("recent-files sidecar not saved")
	}

	log.Info().Str("file", path).Int("rows", len(table.Rows)).Msg("statement loaded")
	return nil
}

// Filter runs the keyword filter over the current table. The user asked to
// filter, so an empty usable keyword set is a validation error here, unlike
// the engine's own "no keyword means everything" rule.
func (s *Session) Filter(keywords []string) (res analysis.FilterResult, err error) {
	log := s.opLogger("filter")
	defer s.recover("filter", &err)

	if s.table == nil {
		return analysis.FilterResult{}, domain.ErrNoStatement
	}
	if len(analysis.UsableKeywords(keywords)) == 0 {
		log.Warn().Msg("filter requested without a usable keyword")
		return analysis.FilterResult{}, domain.ErrNoKeyword
	}

	res = analysis.Filter(s.table, keywords)
	if res.EmptyMatch() {
		log.Warn().Strs("keywords", res.Keywords).Msg("no rows matched keyword filter")
	} else {
		log.Info().Strs("keywords", res.Keywords).Int("matched", res.Count).Str("total", res.Total.String()).Msg("filter applied")
	}
	return res, nil
}

// FilterAll selects the whole table as a FilterResult, for the export-all
// flow where no keyword was supplied.
func (s *Session) FilterAll() (analysis.FilterResult, error) {
	if s.table == nil {
		return analysis.FilterResult{}, domain.ErrNoStatement
	}
	return analysis.Filter(s.table, nil), nil
}

// ExportFilter writes a filter result to CSV. A zero-match result is skipped
// on purpose: nothing is written and the empty path signals it.
func (s *Session) ExportFilter(res analysis.FilterResult) (path string, err error) {
	log := s.opLogger("export")
	defer s.recover("export", &err)

	if s.table == nil {
		return "", domain.ErrNoStatement
	}
	if res.EmptyMatch() {
		log.Info().Strs("keywords", res.Keywords).Msg("export skipped for empty filter result")
		return "", nil
	}

	path, err = s.writer.WriteFilterResult(res, s.table.Columns, s.cfg.MerchantColumn, s.cfg.AmountColumn)
	if err != nil {
		log.Error().Err(err).Msg("filter export failed")
		return "", err
	}
	log.Info().Str("file", path).Int("rows", res.Count).Msg("filter result exported")
	return path, nil
}

// CategorySummary aggregates real transactions by category, in rule order.
func (s *Session) CategorySummary() ([]analysis.Group, error) {
	if s.table == nil {
		return nil, domain.ErrNoStatement
	}
	return analysis.ByCategory(s.table.Transactions(), s.classifier), nil
}

// MonthlySummary aggregates dated real transactions by calendar month.
func (s *Session) MonthlySummary() ([]analysis.Group, error) {
	if s.table == nil {
		return nil, domain.ErrNoStatement
	}
	return analysis.ByMonth(s.table.Transactions()), nil
}

// ExportGroups writes an aggregation summary to CSV under the given kind
// prefix (e.g. 카테고리별, 월별).
func (s *Session) ExportGroups(kind string, groups []analysis.Group) (path string, err error) {
	log := s.opLogger("export")
	defer s.recover("export", &err)

	path, err = s.writer.WriteGroups(kind, groups)
	if err != nil {
		log.Error().Err(err).Str("kind", kind).Msg("summary export failed")
		return "", err
	}
	log.Info().Str("file", path).Str("kind", kind).Msg("summary exported")
	return path, nil
}

// RenderChart hands an aggregation to the chart collaborator.
func (s *Session) RenderChart(r chart.Renderer, title string, groups []analysis.Group) error {
	entries := make([]chart.Entry, len(groups))
	for i, g := range groups {
		entries[i] = chart.Entry{Label: g.Key, Amount: g.Total}
	}
	return r.Render(title, entries)
}

// opLogger tags every event of one user operation with a shared id.
func (s *Session) opLogger(op string) zerolog.Logger {
	return s.log.With().Str("op", op).Str("op_id", uuid.NewString()).Logger()
}

// recover converts an unexpected panic in an operation into a logged,
// generic error so the session never dies mid-run.
func (s *Session) recover(op string, err *error) {
	if r := recover(); r != nil {
		s.log.Error().
			Str("op", op).
			Interface("panic", r).
			Bytes("stack", debug.Stack()).
			Msg("unexpected failure during analysis")
		*err = fmt.Errorf("%s: %w", op, ErrAnalysisFailed)
	}
}
