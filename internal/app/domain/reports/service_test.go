package reports

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/population-dashboard/internal/app/api"
	"github.com/FACorreiaa/population-dashboard/internal/app/models"
)

type MockRemote struct {
	mock.Mock
}

func (m *MockRemote) ListReports(ctx context.Context, filter api.ReportFilter) ([]models.Report, error) {
	args := m.Called(ctx, filter)
	reports, _ := args.Get(0).([]models.Report)
	return reports, args.Error(1)
}

var sample = []models.Report{
	{ID: 1, Title: "Monthly Sales", Type: "sales", Status: "completed"},
	{ID: 2, Title: "Stock usage", Type: "usage", Status: "pending"},
	{ID: 3, Title: "", Type: "sales", Status: "failed"},
	{ID: 4, Title: "Forecast: SALES q3", Type: "forecast", Status: "completed"},
}

func TestFilterByTitle(t *testing.T) {
	tests := []struct {
		search string
		want   []int64
	}{
		{"", []int64{1, 2, 4}},
		{"  ", nil},
		{"sales", []int64{1, 4}},
		{"USAGE", []int64{2}},
		{"stock u", []int64{2}},
		{"nothing", nil},
	}
	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			var got []int64
			for _, r := range FilterByTitle(sample, tt.search) {
				got = append(got, r.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterByTitleFoldsUnicode(t *testing.T) {
	reports := []models.Report{
		{ID: 1, Title: "ÉTUDE Démographique"},
		{ID: 2, Title: "Straße report"},
		{ID: 3, Title: "Etude sans accent"},
	}

	got := FilterByTitle(reports, "étude")
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)

	got = FilterByTitle(reports, "STRASSE")
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestListForwardsKnownFilters(t *testing.T) {
	remote := new(MockRemote)
	remote.On("ListReports", mock.Anything, api.ReportFilter{Type: "sales"}).Return(sample, nil).Once()
	svc := NewService(zap.NewNop())

	got, err := svc.List(context.Background(), remote, Query{Search: "  monthly ", Type: "sales", Status: "bogus"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
	remote.AssertExpectations(t)
}

func TestListError(t *testing.T) {
	remote := new(MockRemote)
	remote.On("ListReports", mock.Anything, mock.Anything).Return(nil, models.ErrRemoteUnavailable)
	svc := NewService(zap.NewNop())

	got, err := svc.List(context.Background(), remote, Query{})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, models.ErrRemoteUnavailable)
}

func TestWriteCSV(t *testing.T) {
	svc := NewService(zap.NewNop())
	var buf bytes.Buffer
	err := svc.WriteCSV(&buf, []models.Report{
		{ID: 7, Title: "Sales, weekly", Type: "sales", Status: "completed",
			CreatedAt: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)},
		{ID: 8, Title: `Say "hi"`, Type: "usage", Status: "pending"},
	})
	require.NoError(t, err)
	assert.Equal(t,
		"ID,Title,Type,Status,Created At\n"+
			"7,\"Sales, weekly\",sales,completed,2024-03-01 09:30:00\n"+
			"8,\"Say \"\"hi\"\"\",usage,pending,\n",
		buf.String())
}
