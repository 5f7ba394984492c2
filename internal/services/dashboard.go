package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"github.com/yungbote/agroregistry-backend/internal/data/aggregates"
	"github.com/yungbote/agroregistry-backend/internal/data/repos"
	domaindash "github.com/yungbote/agroregistry-backend/internal/domain/dashboard"
	"github.com/yungbote/agroregistry-backend/internal/observability"
	"github.com/yungbote/agroregistry-backend/internal/platform/ctxutil"
	"github.com/yungbote/agroregistry-backend/internal/platform/dbctx"
	"github.com/yungbote/agroregistry-backend/internal/platform/logger"
)

type DashboardService interface {
	ComputeReport(ctx context.Context) (*domaindash.Report, error)
	// ExportXLSX renders the report as a spreadsheet, one sheet per chart.
	ExportXLSX(ctx context.Context) ([]byte, error)
}

type dashboardService struct {
	reports repos.ReportRepo
	metrics *observability.Metrics
	log     *logger.Logger
}

func NewDashboardService(reports repos.ReportRepo, metrics *observability.Metrics, baseLog *logger.Logger) DashboardService {
	if baseLog == nil {
		baseLog = logger.Nop()
	}
	return &dashboardService{
		reports: reports,
		metrics: metrics,
		log:     baseLog.With("service", "DashboardService"),
	}
}

// ComputeReport reads the whole registry without writing. The queries are
// independent and run concurrently.
func (s *dashboardService) ComputeReport(ctx context.Context) (*domaindash.Report, error) {
	report, err := s.compute(ctx)
	if err != nil {
		s.metrics.IncReport("json", "failure")
		return nil, err
	}
	s.metrics.IncReport("json", "success")
	return report, nil
}

func (s *dashboardService) compute(ctx context.Context) (*domaindash.Report, error) {
	report := domaindash.EmptyReport()
	var sums domaindash.AreaSums

	g, gctx := errgroup.WithContext(ctx)
	dbc := dbctx.Context{Ctx: gctx}
	g.Go(func() error {
		n, err := s.reports.CountRuralProperties(dbc)
		report.TotalRuralProperties = n
		return err
	})
	g.Go(func() error {
		var err error
		sums, err = s.reports.SumAreas(dbc)
		return err
	})
	g.Go(func() error {
		items, err := s.reports.CountRuralPropertiesByState(dbc)
		if items != nil {
			report.Charts.ByState = items
		}
		return err
	})
	g.Go(func() error {
		items, err := s.reports.CountCultivationsByPlantedCulture(dbc)
		if items != nil {
			report.Charts.ByPlantedCulture = items
		}
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error("dashboard report failed", append([]interface{}{"error", err}, ctxutil.LogFields(ctx)...)...)
		return nil, aggregates.MapError("dashboard.compute_report", err)
	}

	report.TotalArea = sums.TotalArea
	report.Charts.BySoilUse = []domaindash.ChartItem{
		{Label: domaindash.SoilUseArableLabel, Value: sums.ArableArea},
		{Label: domaindash.SoilUseVegetationLabel, Value: sums.VegetationArea},
	}
	return report, nil
}

func (s *dashboardService) ExportXLSX(ctx context.Context) ([]byte, error) {
	report, err := s.compute(ctx)
	if err != nil {
		s.metrics.IncReport("xlsx", "failure")
		return nil, err
	}
	out, err := renderReportXLSX(report)
	if err != nil {
		s.metrics.IncReport("xlsx", "failure")
		return nil, aggregates.MapError("dashboard.export_xlsx", err)
	}
	s.metrics.IncReport("xlsx", "success")
	return out, nil
}

const (
	sheetSummary   = "Summary"
	sheetByState   = "By state"
	sheetByCulture = "By planted culture"
	sheetBySoilUse = "By soil use"
)

func renderReportXLSX(report *domaindash.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, err
	}
	summary := [][]any{
		{"Metric", "Value"},
		{"Total rural properties", report.TotalRuralProperties},
		{"Total area", report.TotalArea},
	}
	if err := writeRows(f, sheetSummary, summary); err != nil {
		return nil, err
	}

	charts := []struct {
		sheet  string
		header string
		items  []domaindash.ChartItem
	}{
		{sheetByState, "State", report.Charts.ByState},
		{sheetByCulture, "Planted culture", report.Charts.ByPlantedCulture},
		{sheetBySoilUse, "Soil use", report.Charts.BySoilUse},
	}
	for _, c := range charts {
		if _, err := f.NewSheet(c.sheet); err != nil {
			return nil, err
		}
		rows := [][]any{{c.header, "Value"}}
		for _, item := range c.items {
			rows = append(rows, []any{item.Label, item.Value})
		}
		if err := writeRows(f, c.sheet, rows); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
