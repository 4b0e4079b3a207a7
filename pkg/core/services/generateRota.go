package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/weekend-rota/internal/config"
	"github.com/jakechorley/weekend-rota/pkg/core/rota"
	"github.com/jakechorley/weekend-rota/pkg/datefmt"
)

const (
	// UnfilledCell marks a place no eligible person could fill
	UnfilledCell = "—"

	// CellSeparator joins the names assigned to a multi-person role
	CellSeparator = " + "

	// maxSeed bounds freshly drawn seeds to [0, maxSeed)
	maxSeed = 1_000_000_000
)

// GenerateRotaRequest holds the optional inputs of a generation.
// Nil fields fall back to the configured or computed defaults.
type GenerateRotaRequest struct {
	Start *time.Time
	End   *time.Time
	Seed  *int64

	// Today anchors the default range (zero uses the current date)
	Today time.Time
}

// RotaColumn describes one column of the rota table
type RotaColumn struct {
	Title string
	Day   time.Weekday

	// RoleKey is empty for the date column of a day
	RoleKey string
}

// RotaRow is one weekend of the rota table, with a cell per column
type RotaRow struct {
	WeekendIndex int
	Cells        []string
}

// GenerateRotaResult represents the result of generating a rota
type GenerateRotaResult struct {
	RunID string
	Seed  int64
	Start time.Time
	End   time.Time

	Columns  []RotaColumn
	Rows     []RotaRow
	Tally    []rota.TallyEntry
	Warnings []string

	// ValidationErrors lists rules the finished run breaks (empty for a healthy run)
	ValidationErrors []rota.ValidationError

	Run *rota.ScheduleRun
}

// Empty reports whether the range contained no Saturday or Sunday
func (r *GenerateRotaResult) Empty() bool {
	return len(r.Rows) == 0
}

// Header returns the column titles in order
func (r *GenerateRotaResult) Header() []string {
	header := make([]string, len(r.Columns))
	for i, col := range r.Columns {
		header[i] = col.Title
	}
	return header
}

// GenerateRota builds a balanced weekend rota for the requested range.
// It resolves the date range and seed, runs the scheduler, formats every cell
// with the configured locale and re-validates the finished run.
func GenerateRota(ctx context.Context, cfg *config.Config, logger *zap.Logger, req GenerateRotaRequest) (*GenerateRotaResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	today := req.Today
	if today.IsZero() {
		today = time.Now()
	}

	start, end := DefaultRange(today, cfg.DefaultHorizonDays)
	if req.Start != nil {
		start = *req.Start
	}
	if req.End != nil {
		end = *req.End
	}

	seed := ResolveSeed(req.Seed, cfg.Seed)
	formatter := datefmt.New(cfg.Locale, cfg.DateLayout)
	roles := RolesFromConfig(cfg.Roles)

	logger.Debug("Generating rota",
		zap.String("start", start.Format("2006-01-02")),
		zap.String("end", end.Format("2006-01-02")),
		zap.Int64("seed", seed),
		zap.Int("roles", len(roles)),
		zap.Int("roster", len(cfg.Roster)))

	run, err := rota.Generate(rota.RunConfig{
		Start:      start,
		End:        end,
		Roster:     cfg.Roster,
		Roles:      roles,
		Seed:       seed,
		FormatDate: formatter.Format,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate rota: %w", err)
	}

	result := &GenerateRotaResult{
		RunID:    uuid.New().String(),
		Seed:     seed,
		Start:    start,
		End:      end,
		Columns:  buildColumns(roles, formatter),
		Tally:    run.Tally(),
		Warnings: run.Warnings(),
		Run:      run,
	}
	result.Rows = buildRows(run, result.Columns, formatter)

	result.ValidationErrors = rota.ValidateRun(run)
	for _, verr := range result.ValidationErrors {
		logger.Warn("Rota failed validation",
			zap.String("run_id", result.RunID),
			zap.Int("weekend", verr.WeekendIndex),
			zap.String("role", verr.RoleKey),
			zap.String("constraint", verr.ConstraintName),
			zap.String("description", verr.Description))
	}

	for _, warning := range result.Warnings {
		logger.Debug("Rota warning", zap.String("run_id", result.RunID), zap.String("warning", warning))
	}

	logger.Info("Rota generated",
		zap.String("run_id", result.RunID),
		zap.Int64("seed", seed),
		zap.Int("weekends", len(result.Rows)),
		zap.Int("filled", run.FilledSlots()),
		zap.Int("warnings", len(result.Warnings)))

	return result, nil
}

// DefaultRange returns the range used when none is given: from the first
// Saturday on or after today to the first Sunday on or after today+horizonDays
func DefaultRange(today time.Time, horizonDays int) (time.Time, time.Time) {
	if horizonDays <= 0 {
		horizonDays = config.DefaultHorizonDays
	}
	start := nextWeekdayOnOrAfter(today, time.Saturday)
	end := nextWeekdayOnOrAfter(today.AddDate(0, 0, horizonDays), time.Sunday)
	return start, end
}

// ResolveSeed picks the seed for a run: the requested seed, then the
// configured one, then a freshly drawn value
func ResolveSeed(requested, configured *int64) int64 {
	if requested != nil {
		return *requested
	}
	if configured != nil {
		return *configured
	}
	return FreshSeed()
}

// FreshSeed draws a new seed in [0, 1e9)
func FreshSeed() int64 {
	return rand.Int64N(maxSeed)
}

// RolesFromConfig converts configured roles into scheduler roles, keeping their order
func RolesFromConfig(roles []config.RoleConfig) []rota.Role {
	out := make([]rota.Role, 0, len(roles))
	for _, r := range roles {
		out = append(out, rota.Role{
			Key:       r.Key,
			Label:     r.Label,
			Day:       r.Weekday(),
			Headcount: r.Headcount,
			Eligible:  r.Eligible,
		})
	}
	return out
}

// buildColumns lays the table out as the Saturday date, Saturday roles,
// then the Sunday date and Sunday roles
func buildColumns(roles []rota.Role, formatter *datefmt.Formatter) []RotaColumn {
	var columns []RotaColumn
	for _, day := range []time.Weekday{time.Saturday, time.Sunday} {
		columns = append(columns, RotaColumn{Title: formatter.DayName(day), Day: day})
		for _, role := range rota.RolesForDay(roles, day) {
			columns = append(columns, RotaColumn{Title: role.Label, Day: day, RoleKey: role.Key})
		}
	}
	return columns
}

func buildRows(run *rota.ScheduleRun, columns []RotaColumn, formatter *datefmt.Formatter) []RotaRow {
	rows := make([]RotaRow, 0, len(run.Weekends))
	for _, weekend := range run.Weekends {
		cells := make([]string, len(columns))
		for i, col := range columns {
			date := weekendDay(weekend, col.Day)
			if date == nil {
				continue
			}
			if col.RoleKey == "" {
				cells[i] = formatter.Format(*date)
				continue
			}
			if assignment, ok := weekend.Assignment(col.RoleKey); ok {
				cells[i] = FormatCell(assignment.People)
			}
		}
		rows = append(rows, RotaRow{WeekendIndex: weekend.Index, Cells: cells})
	}
	return rows
}

// FormatCell renders the people assigned to one role occurrence
func FormatCell(people []string) string {
	names := make([]string, len(people))
	for i, name := range people {
		if name == "" {
			name = UnfilledCell
		}
		names[i] = name
	}
	return strings.Join(names, CellSeparator)
}

func weekendDay(weekend rota.WeekendResult, day time.Weekday) *time.Time {
	if day == time.Saturday {
		return weekend.Saturday
	}
	return weekend.Sunday
}

// nextWeekdayOnOrAfter returns the first date on or after from that falls on day
func nextWeekdayOnOrAfter(from time.Time, day time.Weekday) time.Time {
	// Normalize to start of day to avoid time-of-day issues
	normalized := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	days := (int(day) - int(normalized.Weekday()) + 7) % 7
	return normalized.AddDate(0, 0, days)
}
