package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const exportSheetName = "Readings"

// ExportService renders a sensor's reading history as an xlsx workbook.
type ExportService struct {
	registry *SensorRegistryService
}

func NewExportService(registry *SensorRegistryService) *ExportService {
	return &ExportService{registry: registry}
}

// BuildReadingsWorkbook fetches up to limit readings from the last hours
// hours for a sensor the principal owns and lays them out one row per
// reading. The caller owns closing the returned file.
func (s *ExportService) BuildReadingsWorkbook(ctx context.Context, principalID string, sensorID uuid.UUID, hours, limit int) (*excelize.File, error) {
	readings, err := s.registry.GetSensorData(ctx, principalID, sensorID, hours, limit)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	index, err := f.NewSheet(exportSheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	headers := []string{"Timestamp", "Value", "Unit", "Quality"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(exportSheetName, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, reading := range readings {
		values := []interface{}{
			reading.Timestamp.Format(time.RFC3339),
			reading.Value,
			reading.Unit,
			string(reading.Quality),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(exportSheetName, cell, value); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to write reading row: %w", err)
			}
		}
	}

	return f, nil
}
