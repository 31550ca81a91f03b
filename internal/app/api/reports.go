package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/FACorreiaa/population-dashboard/internal/app/models"
)

type ReportFilter struct {
	Type   string
	Status string
}

func (f ReportFilter) query() url.Values {
	q := url.Values{}
	if f.Type != "" {
		q.Set("type", f.Type)
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	return q
}

// ListReports accepts both a bare array and a paginated {"results": [...]}
// body. Any other shape yields an empty list rather than an error.
func (c *Client) ListReports(ctx context.Context, filter ReportFilter) ([]models.Report, error) {
	raw, err := c.do(ctx, http.MethodGet, "/reports/", filter.query(), nil)
	if err != nil {
		return nil, err
	}
	return decodeReports(raw), nil
}

func decodeReports(raw []byte) []models.Report {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return []models.Report{}
	}
	if raw[0] == '[' {
		var list []models.Report
		if err := json.Unmarshal(raw, &list); err == nil {
			return list
		}
		return []models.Report{}
	}
	var page struct {
		Results []models.Report `json:"results"`
	}
	if err := json.Unmarshal(raw, &page); err == nil && page.Results != nil {
		return page.Results
	}
	return []models.Report{}
}
