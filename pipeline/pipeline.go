// Package pipeline wires the analysis stages in their fixed order:
// connect, load, profile, encode, shape, hypothesis tests, correlation.
// Connection and query failures halt the run; profiling failures are
// isolated per column and logged.
package pipeline

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/DimaChesnokov/ConnectPostgreSQL/config"
	"github.com/DimaChesnokov/ConnectPostgreSQL/correlation"
	"github.com/DimaChesnokov/ConnectPostgreSQL/dataframe"
	"github.com/DimaChesnokov/ConnectPostgreSQL/hypothesis"
	"github.com/DimaChesnokov/ConnectPostgreSQL/pkg/log"
	"github.com/DimaChesnokov/ConnectPostgreSQL/postgres"
	"github.com/DimaChesnokov/ConnectPostgreSQL/preprocessing"
	"github.com/DimaChesnokov/ConnectPostgreSQL/profile"
	"github.com/DimaChesnokov/ConnectPostgreSQL/report"
)

// Columns the hypothesis tests are fixed on.
const (
	colLandUse      = "landuse"
	colSalePrice    = "saleprice"
	colSoldAsVacant = "soldasvacant"
	colAcreage      = "acreage"
)

// Run executes the full pipeline against the configured database, writing
// the report to out. The connection is held for the run and closed on
// return.
func Run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	logger := slog.Default().With(log.RunIDKey, uuid.NewString())
	rep := report.NewWriter(out)

	start := time.Now()
	conn, err := postgres.Connect(ctx, cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database)
	if err != nil {
		logger.Error("connection failed", log.ErrAttr(err), log.StageKey, "connect")
		return err
	}
	defer func() {
		if cerr := conn.Close(ctx); cerr != nil {
			logger.Warn("close connection", log.ErrAttr(cerr))
		}
	}()
	rep.Connected()
	logger.Info("connected",
		log.StageKey, "connect",
		log.DurationMsKey, time.Since(start).Milliseconds())

	start = time.Now()
	frame, err := postgres.Load(ctx, conn, cfg.Query())
	if err != nil {
		logger.Error("load failed", log.ErrAttr(err), log.StageKey, "load")
		return err
	}
	rep.Loaded(frame.Rows())
	logger.Info("loaded",
		log.StageKey, "load",
		log.TableKey, cfg.Table,
		log.RowsKey, frame.Rows(),
		log.ColumnsKey, frame.Cols(),
		log.DurationMsKey, time.Since(start).Milliseconds())

	return Analyze(cfg, frame, rep, logger)
}

// Analyze runs every stage after loading. Split from Run so the analysis
// can execute against any frame.
func Analyze(cfg *config.Config, frame *dataframe.Frame, rep *report.Writer, logger *slog.Logger) error {
	// Numeric and categorical profiling, both with per-column isolation.
	summaries, errs := profile.Numeric(frame, cfg.QuantitativeColumns)
	for _, s := range summaries {
		rep.NumericSummary(s)
	}
	logColumnErrors(logger, rep, "profile_numeric", errs)

	catSummaries, errs := profile.Categorical(frame, cfg.CategoricalColumns())
	for _, s := range catSummaries {
		rep.CategoricalSummary(s)
	}
	logColumnErrors(logger, rep, "profile_categorical", errs)

	// Encoding mutates the frame; every stage below sees integer codes.
	frame, encReports, err := preprocessing.EncodeTextColumns(frame)
	if err != nil {
		logger.Error("encoding failed", log.ErrAttr(err), log.StageKey, "encode")
		return err
	}
	for _, r := range encReports {
		rep.Encoding(r)
		logger.Info("column encoded",
			log.StageKey, "encode",
			log.ColumnKey, r.Column,
			"classes", r.ClassCount)
	}

	rep.Shape(frame.Rows(), frame.Cols())

	if err := testHypotheses(cfg, frame, rep, logger); err != nil {
		return err
	}
	return correlate(cfg, frame, rep, logger)
}

func testHypotheses(cfg *config.Config, frame *dataframe.Frame, rep *report.Writer, logger *slog.Logger) error {
	groups, err := frame.GroupFloats(colLandUse, colSalePrice)
	if err != nil {
		logger.Error("hypothesis grouping failed", log.ErrAttr(err), log.StageKey, "hypothesis")
		return err
	}
	samples := make([][]float64, len(groups))
	for i, g := range groups {
		samples[i] = g.Values
	}
	anova, err := hypothesis.OneWayANOVA(samples)
	if err != nil {
		logger.Error("anova failed", log.ErrAttr(err), log.StageKey, "hypothesis")
		return err
	}
	rep.ANOVA(anova, cfg.Alpha)
	logger.Info("hypothesis tested",
		log.StageKey, "hypothesis",
		log.TestNameKey, anova.Name,
		log.StatisticKey, anova.Statistic,
		log.PValueKey, anova.PValue)

	vacant, err := frame.FloatsWhere(colAcreage, colSoldAsVacant, 1)
	if err != nil {
		return err
	}
	nonVacant, err := frame.FloatsWhere(colAcreage, colSoldAsVacant, 0)
	if err != nil {
		return err
	}
	ttest, err := hypothesis.WelchTTest(vacant, nonVacant)
	if err != nil {
		logger.Error("t-test failed", log.ErrAttr(err), log.StageKey, "hypothesis")
		return err
	}
	rep.TTest(ttest, cfg.Alpha)
	logger.Info("hypothesis tested",
		log.StageKey, "hypothesis",
		log.TestNameKey, ttest.Name,
		log.StatisticKey, ttest.Statistic,
		log.PValueKey, ttest.PValue)
	return nil
}

func correlate(cfg *config.Config, frame *dataframe.Frame, rep *report.Writer, logger *slog.Logger) error {
	result, err := correlation.Matrix(frame)
	if err != nil {
		logger.Error("correlation failed", log.ErrAttr(err), log.StageKey, "correlation")
		return err
	}
	table, err := result.TargetTable(cfg.TargetColumn)
	if err != nil {
		logger.Error("target table failed", log.ErrAttr(err), log.StageKey, "correlation")
		return err
	}
	rep.CorrelationTable(table)

	if cfg.HeatmapPath != "" {
		if err := correlation.SaveHeatmap(result, cfg.HeatmapPath); err != nil {
			logger.Error("heatmap failed", log.ErrAttr(err), log.StageKey, "correlation")
			return err
		}
		rep.HeatmapSaved(cfg.HeatmapPath)
	}
	return nil
}

func logColumnErrors(logger *slog.Logger, rep *report.Writer, stage string, errs []error) {
	for _, err := range errs {
		rep.ColumnError(err)
		logger.Warn("column skipped", log.ErrAttr(err), log.StageKey, stage)
	}
}
