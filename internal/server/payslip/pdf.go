package payslip

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/anshumat/paystream/internal/server/models"
	"github.com/go-pdf/fpdf"
)

// Static issuer block. The issuing entity is fixed for the whole
// deployment; nothing in a slip can change it.
const (
	companyName    = "PAYSTREAM INC."
	companyAddress = "123, Tech Park, XYZ Valley, India"
	companyTaxID   = "Tax ID: 99-12345678"

	department = "Engineering"
	bankName   = "HDFC Bank"
	accountNo  = "XXXX-XXXX-8899"
)

var footerLines = []string{
	"This is a system-generated payslip and does not require a physical signature.",
	"For any discrepancies, please contact hire-me@anshumat.org within 3 working days.",
	"Confidentiality Notice: The information contained in this document is confidential and intended only for the employee named above.",
}

// timeNow is a seam for stamping a fixed generation date in tests.
var timeNow = time.Now

// payslipRef derives the printable reference from the record id: the last
// eight characters, uppercased.
func payslipRef(id string) string {
	if len(id) > 8 {
		id = id[len(id)-8:]
	}
	return strings.ToUpper(id)
}

// Render produces the payslip PDF for the given slip and requester. It is
// a pure function of its inputs apart from the embedded generation date,
// and it never mutates the slip.
func Render(slip *models.SalarySlip, requesterEmail string) ([]byte, error) {
	bd, err := Decompose(slip.Amount)
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	// Issuer header block.
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(0, 0, 139)
	pdf.CellFormat(0, 10, companyName, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, 5, companyAddress, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, companyTaxID, "", 1, "L", false, 0, "")
	pdf.Ln(8)

	// Title naming the pay period.
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	title := fmt.Sprintf("PAYSLIP FOR %s %d", strings.ToUpper(slip.Month), slip.Year)
	pdf.CellFormat(0, 8, title, "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// Employee / pay metadata grid.
	payDate := timeNow().UTC().Format("02 Jan, 2006")
	meta := [][4]string{
		{"Employee Email:", requesterEmail, "Payslip ID:", payslipRef(slip.ID)},
		{"Department:", department, "Pay Date:", payDate},
		{"Bank Name:", bankName, "Account No:", accountNo},
	}

	pdf.SetTextColor(47, 79, 79)
	for _, row := range meta {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(32, 7, row[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(62, 7, row[1], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(32, 7, row[2], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(54, 7, row[3], "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	// Earnings table header.
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(0, 0, 139)
	pdf.SetTextColor(245, 245, 245)
	pdf.CellFormat(125, 10, "Earnings", "1", 0, "L", true, 0, "")
	pdf.CellFormat(55, 10, "Amount ($)", "1", 1, "R", true, 0, "")

	// Line items, with a blank spacer row before the total.
	items := []struct {
		label  string
		amount string
	}{
		{"Basic Salary", formatMoney(bd.Basic)},
		{"House Rent Allowance", formatMoney(bd.HRA)},
		{"Special Allowance", formatMoney(bd.Special)},
		{"Performance Bonus", formatMoney(bd.Bonus)},
		{"", ""},
	}

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetFillColor(245, 245, 245)
	pdf.SetTextColor(0, 0, 0)
	for _, item := range items {
		pdf.CellFormat(125, 8, item.label, "1", 0, "L", true, 0, "")
		pdf.CellFormat(55, 8, item.amount, "1", 1, "R", true, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetFillColor(211, 211, 211)
	pdf.CellFormat(125, 11, "GROSS TOTAL", "1", 0, "L", true, 0, "")
	pdf.CellFormat(55, 11, formatMoney(slip.Amount), "1", 1, "R", true, 0, "")
	pdf.Ln(12)

	// Net payable highlight: always equal to gross.
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 128, 0)
	pdf.CellFormat(0, 10, fmt.Sprintf("NET PAYABLE: $%s", formatMoney(slip.Amount)), "", 1, "R", false, 0, "")
	pdf.Ln(16)

	// Confidentiality footer.
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(128, 128, 128)
	for _, line := range footerLines {
		pdf.MultiCell(0, 4, line, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("payslip render error: %w", err)
	}

	return buf.Bytes(), nil
}
