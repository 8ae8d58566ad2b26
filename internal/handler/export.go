package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/arpandhara/mini-banking-system/internal/models"
	"github.com/arpandhara/mini-banking-system/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler produces downloadable account statements.
type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

var statementHeaders = []string{"Transaction ID", "Name", "Type", "Amount", "Date", "Note", "Status"}

func (h *ExportHandler) loadStatement(c *gin.Context) ([]models.Transaction, bool) {
	user, ok := currentUser(c)
	if !ok {
		return nil, false
	}

	var txs []models.Transaction
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&txs).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to load transactions")
		return nil, false
	}
	return txs, true
}

// ExportStatement streams the user's transaction history as CSV (default)
// or XLSX, chosen by ?format=.
func (h *ExportHandler) ExportStatement(c *gin.Context) {
	switch c.DefaultQuery("format", "csv") {
	case "xlsx":
		h.exportXLSX(c)
	case "csv":
		h.exportCSV(c)
	default:
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "format must be csv or xlsx")
	}
}

func (h *ExportHandler) exportCSV(c *gin.Context) {
	txs, ok := h.loadStatement(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"statement_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(statementHeaders)
	for i := range txs {
		t := &txs[i]
		writer.Write([]string{
			t.ID,
			t.Name,
			t.Type,
			util.FormatCent(t.AmountCent),
			t.Date,
			t.Description,
			t.Status,
		})
	}
}

func (h *ExportHandler) exportXLSX(c *gin.Context) {
	txs, ok := h.loadStatement(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	sheetName := "Statement"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to create sheet")
		return
	}
	f.SetActiveSheet(index)

	for i, header := range statementHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for idx := range txs {
		t := &txs[idx]
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), t.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), t.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), t.Type)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), util.FormatCent(t.AmountCent))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), t.Date)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), t.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), t.Status)
	}

	f.SetColWidth(sheetName, "A", "A", 40)
	f.SetColWidth(sheetName, "B", "B", 28)
	f.SetColWidth(sheetName, "C", "C", 16)
	f.SetColWidth(sheetName, "D", "D", 12)
	f.SetColWidth(sheetName, "E", "E", 12)
	f.SetColWidth(sheetName, "F", "F", 30)
	f.SetColWidth(sheetName, "G", "G", 12)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"statement_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Export failed")
	}
}
