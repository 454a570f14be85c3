package services

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/jung-kurt/gofpdf"
)

// ReceiptData là dữ liệu in trên biên nhận lương
type ReceiptData struct {
	EmployeeName string
	EmployeeID   uint
	Month        int
	Year         int
	Amount       float64
	DueAmount    float64
	Date         time.Time
}

// ReceiptBuilder sinh biên nhận và trả về đường dẫn file
type ReceiptBuilder interface {
	Build(data ReceiptData) (string, error)
}

// PDFReceiptBuilder implement ReceiptBuilder bằng gofpdf
type PDFReceiptBuilder struct {
	dir string
}

func NewPDFReceiptBuilder(dir string) *PDFReceiptBuilder {
	return &PDFReceiptBuilder{dir: dir}
}

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// sanitizeFileName bỏ dấu và ký tự không an toàn khỏi tên file
func sanitizeFileName(name string) string {
	name = unidecode.Unidecode(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "_")
	return unsafeFileChars.ReplaceAllString(name, "")
}

func (b *PDFReceiptBuilder) Build(data ReceiptData) (string, error) {
	if err := os.MkdirAll(b.dir, 0755); err != nil {
		return "", err
	}

	monthName := time.Month(data.Month).String()
	fileName := fmt.Sprintf("salary_%s_%s_%d.pdf", sanitizeFileName(data.EmployeeName), monthName, data.Year)
	path := filepath.Join(b.dir, fileName)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 12, "Salary Slip", "", 1, "C", false, 0, "")
	pdf.Ln(4)
	pdf.SetFont("Arial", "", 14)
	pdf.CellFormat(0, 8, fmt.Sprintf("Employee Name: %s", data.EmployeeName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Employee ID: %d", data.EmployeeID), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Month: %s %d", monthName, data.Year), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Paid Amount: $%.2f", data.Amount), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Remaining Due: $%.2f", data.DueAmount), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Payment Date: %s", data.Date.Format("02/01/2006")), "", 1, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}
	return path, nil
}
