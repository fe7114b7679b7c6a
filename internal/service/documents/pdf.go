package documents

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/drphonenord/repairdesk/internal/domain"
)

var consentClauses = []string{
	"The customer authorises the technician to open the device and carry out the repair described above.",
	"Data loss can occur during repair. The customer is responsible for backing up the device beforehand.",
	"Devices left unclaimed for more than 90 days after repair completion may be disposed of.",
	"The repair is covered by a 6-month warranty on the replaced parts, excluding accidental damage.",
}

type checklistLine struct {
	label   string
	checked bool
}

// renderServiceForm builds the printable intake form for an appointment.
func renderServiceForm(company domain.CompanyInfo, appt *domain.Appointment) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	writeLetterhead(pdf, company)
	writeTitle(pdf, appt)
	writeClientBlock(pdf, appt)
	writeDeviceBlock(pdf, appt)
	writeChecklist(pdf, appt.Checks)
	writeNotes(pdf, appt)
	writeConsent(pdf)
	writePayment(pdf, appt.Payment)
	writeSignatures(pdf)

	if appt.Payment.Paid {
		stampPaid(pdf)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeLetterhead(pdf *fpdf.Fpdf, company domain.CompanyInfo) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 8, company.Name, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(0, 4, company.Address, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 4, fmt.Sprintf("%s  |  %s", company.Phone, company.Email), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(2)
	pdf.SetDrawColor(40, 40, 40)
	x, y := pdf.GetXY()
	pdf.Line(x, y, 195, y)
	pdf.Ln(4)
}

func writeTitle(pdf *fpdf.Fpdf, appt *domain.Appointment) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(120, 8, "Repair Service Form", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, fmt.Sprintf("DRP-%d", appt.Number), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(0, 4, fmt.Sprintf("Created %s", appt.CreatedAt.Format("2006-01-02 15:04")), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(3)
}

func writeClientBlock(pdf *fpdf.Fpdf, appt *domain.Appointment) {
	sectionHeader(pdf, "Client")
	fieldRow(pdf, "Name", appt.FullName(), "Phone", appt.Phone)
	fieldRow(pdf, "Email", appt.Email, "City", appt.City)
	pdf.Ln(2)
}

func writeDeviceBlock(pdf *fpdf.Fpdf, appt *domain.Appointment) {
	sectionHeader(pdf, "Device")
	fieldRow(pdf, "Model", appt.Model, "IMEI", appt.IMEI)
	fieldRow(pdf, "Passcode", appt.Passcode, "Accessories", appt.Accessories)
	slot := ""
	if appt.Date != "" {
		slot = fmt.Sprintf("%s %s", appt.Date, appt.Time.String())
	}
	fieldRow(pdf, "Appointment", slot, "Status", appt.Status)
	if appt.Issue != "" {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(30, 5, "Reported issue", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 5, appt.Issue, "", "L", false)
	}
	pdf.Ln(2)
}

func writeChecklist(pdf *fpdf.Fpdf, checks domain.Checklist) {
	sectionHeader(pdf, "Intake checklist")
	lines := []checklistLine{
		{"Device powers on", checks.PowerOn},
		{"SIM card present", checks.SIM},
		{"MicroSD card present", checks.MicroSD},
		{"Face ID functional", checks.FaceID},
		{"Touch ID functional", checks.TouchID},
		{"True Tone functional", checks.TrueTone},
		{"Condition photos taken", checks.PhotosTaken},
	}
	pdf.SetFont("Helvetica", "", 9)
	for i := 0; i < len(lines); i += 2 {
		pdf.CellFormat(90, 5, checklistCell(lines[i]), "", 0, "L", false, 0, "")
		if i+1 < len(lines) {
			pdf.CellFormat(90, 5, checklistCell(lines[i+1]), "", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(2)
}

func checklistCell(line checklistLine) string {
	mark := "[ ]"
	if line.checked {
		mark = "[X]"
	}
	return fmt.Sprintf("%s  %s", mark, line.label)
}

func writeNotes(pdf *fpdf.Fpdf, appt *domain.Appointment) {
	if appt.IntakeNotes == "" {
		return
	}
	sectionHeader(pdf, "Intake notes")
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(0, 5, appt.IntakeNotes, "", "L", false)
	pdf.Ln(2)
}

func writeConsent(pdf *fpdf.Fpdf) {
	sectionHeader(pdf, "Terms")
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(70, 70, 70)
	for i, clause := range consentClauses {
		pdf.MultiCell(0, 4, fmt.Sprintf("%d. %s", i+1, clause), "", "L", false)
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(2)
}

func writePayment(pdf *fpdf.Fpdf, payment domain.Payment) {
	sectionHeader(pdf, "Payment")
	settled := "outstanding"
	if payment.Paid {
		settled = "paid"
	}
	method := payment.Method
	if method == "" {
		method = "-"
	}
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(60, 5, fmt.Sprintf("Amount: %.2f EUR", payment.Amount), "", 0, "L", false, 0, "")
	pdf.CellFormat(60, 5, fmt.Sprintf("Method: %s", method), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Status: %s", settled), "", 1, "L", false, 0, "")
	pdf.Ln(4)
}

func writeSignatures(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "", 9)
	y := pdf.GetY() + 14
	pdf.SetDrawColor(40, 40, 40)
	pdf.Line(15, y, 85, y)
	pdf.Line(110, y, 180, y)
	pdf.SetY(y + 1)
	pdf.CellFormat(95, 5, "Customer signature", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, "Technician signature", "", 1, "L", false, 0, "")
}

// stampPaid overlays a translucent diagonal PAID mark.
func stampPaid(pdf *fpdf.Fpdf) {
	pdf.SetAlpha(0.25, "Normal")
	pdf.SetTextColor(200, 30, 30)
	pdf.SetFont("Helvetica", "B", 60)
	pdf.TransformBegin()
	pdf.TransformRotate(35, 105, 150)
	pdf.Text(60, 160, "PAID")
	pdf.TransformEnd()
	pdf.SetAlpha(1, "Normal")
	pdf.SetTextColor(0, 0, 0)
}

func sectionHeader(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(0, 6, title, "", 1, "L", true, 0, "")
	pdf.Ln(1)
}

func fieldRow(pdf *fpdf.Fpdf, label1, value1, label2, value2 string) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(30, 5, label1, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(60, 5, value1, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(30, 5, label2, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, value2, "", 1, "L", false, 0, "")
}
