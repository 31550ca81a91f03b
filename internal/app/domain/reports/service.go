package reports

import (
	"context"
	"encoding/csv"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"
	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"github.com/FACorreiaa/population-dashboard/internal/app/api"
	"github.com/FACorreiaa/population-dashboard/internal/app/models"
)

var (
	_ Service = (*ServiceImpl)(nil)
	_ Remote  = (*api.Client)(nil)
)

var csvHeader = []string{"ID", "Title", "Type", "Status", "Created At"}

const createdAtLayout = "2006-01-02 15:04:05"

type Remote interface {
	ListReports(ctx context.Context, filter api.ReportFilter) ([]models.Report, error)
}

// Query is what the reports page filters by. Unknown type or status values
// are dropped rather than forwarded.
type Query struct {
	Search string
	Type   string
	Status string
}

func (q Query) normalized() Query {
	q.Search = strings.TrimSpace(q.Search)
	if !slices.Contains(models.ReportTypes, q.Type) {
		q.Type = ""
	}
	if !slices.Contains(models.ReportStatuses, q.Status) {
		q.Status = ""
	}
	return q
}

type Service interface {
	List(ctx context.Context, remote Remote, q Query) ([]models.Report, error)
	WriteCSV(w io.Writer, reports []models.Report) error
}

type ServiceImpl struct {
	logger *zap.Logger
}

func NewService(logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{logger: logger}
}

// List fetches reports filtered remotely by type and status, then narrows
// them by a case-insensitive title search.
func (s *ServiceImpl) List(ctx context.Context, remote Remote, q Query) ([]models.Report, error) {
	l := s.logger.With(zap.String("method", "List"))
	q = q.normalized()

	all, err := remote.ListReports(ctx, api.ReportFilter{Type: q.Type, Status: q.Status})
	if err != nil {
		l.Error("Failed to load reports", zap.Error(err))
		return nil, err
	}
	out := FilterByTitle(all, q.Search)
	l.Debug("Reports loaded", zap.Int("total", len(all)), zap.Int("matched", len(out)))
	return out, nil
}

// FilterByTitle keeps the reports whose title contains search, ignoring case.
// Untitled reports never match, even for an empty search.
func FilterByTitle(reports []models.Report, search string) []models.Report {
	out := make([]models.Report, 0, len(reports))
	if search == "" {
		for _, r := range reports {
			if r.Title != "" {
				out = append(out, r)
			}
		}
		return out
	}

	// Casers keep state and are not shared between requests.
	fold := cases.Fold()
	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		MatchKind: ahocorasick.LeftMostLongestMatch,
		DFA:       true,
	})
	matcher := builder.Build([]string{fold.String(search)})

	for _, r := range reports {
		if r.Title == "" {
			continue
		}
		if len(matcher.FindAll(fold.String(r.Title))) > 0 {
			out = append(out, r)
		}
	}
	return out
}

func (s *ServiceImpl) WriteCSV(w io.Writer, reports []models.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range reports {
		if err := cw.Write([]string{
			strconv.FormatInt(r.ID, 10),
			r.Title,
			r.Type,
			r.Status,
			formatCreatedAt(r.CreatedAt),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatCreatedAt(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(createdAtLayout)
}
