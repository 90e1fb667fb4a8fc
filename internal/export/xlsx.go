package export

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/label-intake/constants"
	"github.com/joseph-ayodele/label-intake/internal/extract"
)

// CheckInSheet is the worksheet holding one row per scanned label.
const CheckInSheet = "CheckIn"

var checkInHeaders = []string{
	"#",
	"Carrier",
	"Tracking Number",
	"Tracking Valid",
	"Recipient",
	"Business",
	"PMB",
	"Service Type",
	"Package Size",
	"Confidence",
	"Review",
}

// Service renders extraction results into check-in workbooks.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// WriteXLSX writes a workbook with a CheckIn sheet for results to w. Rows
// below minConfidence (or otherwise failing review) are marked NEEDS_REVIEW.
func (s *Service) WriteXLSX(w io.Writer, results []extract.ExtractionResult, minConfidence float64) error {
	start := time.Now()

	f, err := s.build(results, minConfidence)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("export.xlsx.close_failed", "err", err)
		}
	}()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(results),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

func (s *Service) build(results []extract.ExtractionResult, minConfidence float64) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", CheckInSheet); err != nil {
		return nil, fmt.Errorf("xlsx sheet: %w", err)
	}

	for i, h := range checkInHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(CheckInSheet, cell, h)
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		_ = f.SetRowStyle(CheckInSheet, 1, 1, style)
	}
	review, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFF2CC"}},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx style: %w", err)
	}

	for i, r := range results {
		row := i + 2
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(CheckInSheet, cell, v)
		}

		status := extract.Review(r, minConfidence)
		write(1, i+1)
		write(2, r.Carrier.String())
		write(3, r.TrackingNumber)
		write(4, yesNo(r.TrackingNumberValid))
		write(5, r.RecipientName)
		write(6, yesNo(r.RecipientIsBusiness))
		write(7, r.PMBNumber)
		write(8, r.ServiceType.Label())
		write(9, r.PackageSize.String())
		write(10, r.Confidence)
		write(11, string(status))

		if status != constants.ReviewOK {
			first, _ := excelize.CoordinatesToCellName(1, row)
			last, _ := excelize.CoordinatesToCellName(len(checkInHeaders), row)
			_ = f.SetCellStyle(CheckInSheet, first, last, review)
		}
	}

	_ = f.SetColWidth(CheckInSheet, "A", "A", 5)  // #
	_ = f.SetColWidth(CheckInSheet, "B", "B", 10) // carrier
	_ = f.SetColWidth(CheckInSheet, "C", "C", 28) // tracking
	_ = f.SetColWidth(CheckInSheet, "D", "D", 8)
	_ = f.SetColWidth(CheckInSheet, "E", "E", 32) // recipient
	_ = f.SetColWidth(CheckInSheet, "F", "G", 10)
	_ = f.SetColWidth(CheckInSheet, "H", "H", 24) // service type
	_ = f.SetColWidth(CheckInSheet, "I", "K", 14)

	if err := f.SetPanes(CheckInSheet, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("xlsx panes: %w", err)
	}
	return f, nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
