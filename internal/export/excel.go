package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"hoteldesk/internal/models"
	"hoteldesk/internal/repository"

	"github.com/xuri/excelize/v2"
)

// SalesToExcel writes the given sales records to an .xlsx file under dir and
// returns the file path. One row per record plus a total-income row.
func SalesToExcel(dir string, records []models.SalesRecord) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Sales"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return "", fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headers := []string{"Guest Name", "Room Number", "Room Type", "Check-Out Date", "Amount Paid"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, h)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	_ = f.SetCellStyle(sheetName, "A1", "E1", headerStyle)

	for i, r := range records {
		row := i + 2
		_ = f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), r.GuestName)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), r.RoomNumber)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), r.RoomType)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), r.CheckOutDate.Format(models.DateLayout))
		_ = f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), r.AmountPaid)
	}

	totalRow := len(records) + 2
	_ = f.SetCellValue(sheetName, fmt.Sprintf("D%d", totalRow), "Total Income")
	_ = f.SetCellValue(sheetName, fmt.Sprintf("E%d", totalRow), repository.Total(records))

	_ = f.SetColWidth(sheetName, "A", "A", 25)
	_ = f.SetColWidth(sheetName, "B", "E", 16)
	_ = f.DeleteSheet("Sheet1")

	fileName := fmt.Sprintf("sales_%s.xlsx", time.Now().Format("2006-01-02_150405"))
	path := filepath.Join(dir, fileName)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save export: %w", err)
	}
	return path, nil
}
