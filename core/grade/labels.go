package grade

import "github.com/trezcool/rapor/core"

// translation keys
const (
	lblNo            = "grade.col.no"
	lblStudentName   = "grade.col.studentName"
	lblNISN          = "grade.col.nisn"
	lblMidterm       = "grade.col.midterm"
	lblFinalExam     = "grade.col.finalExam"
	lblFinalScore    = "grade.col.finalScore"
	lblSubject       = "grade.col.subject"
	lblCategory      = "grade.col.category"
	lblStatus        = "grade.col.status"
	lblPassed        = "grade.status.passed"
	lblFailed        = "grade.status.failed"
	lblGeneral       = "grade.category.general"
	lblSheetTitle    = "grade.sheet.title"
	lblSheetFilename = "grade.sheet.filename"
	lblSheetName     = "grade.sheet.sheetName"
	lblReportTitle   = "grade.report.title"
	lblReportFile    = "grade.report.filename"
	lblReportSheet   = "grade.report.sheetName"
)

// Labels holds the column labels & document names of grade tables.
var Labels = core.Translations{
	lblNo:            {"en": "No", "id": "No"},
	lblStudentName:   {"en": "Student Name", "id": "Nama Siswa"},
	lblNISN:          {"en": "NISN", "id": "NISN"},
	lblMidterm:       {"en": "Midterm", "id": "UTS"},
	lblFinalExam:     {"en": "Final Exam", "id": "UAS"},
	lblFinalScore:    {"en": "Final Score", "id": "Nilai Akhir"},
	lblSubject:       {"en": "Subject", "id": "Mata Pelajaran"},
	lblCategory:      {"en": "Category", "id": "Kategori"},
	lblStatus:        {"en": "Status", "id": "Status"},
	lblPassed:        {"en": "Passed", "id": "Lulus"},
	lblFailed:        {"en": "Failed", "id": "Tidak Lulus"},
	lblGeneral:       {"en": "General", "id": "Umum"},
	lblSheetTitle:    {"en": "Grades {0} - {1}", "id": "Nilai {0} - {1}"},
	lblSheetFilename: {"en": "Grades-{0}-{1}", "id": "Nilai-{0}-{1}"},
	lblSheetName:     {"en": "Grades {0}", "id": "Nilai {0}"},
	lblReportTitle:   {"en": "Student Grade Report", "id": "Laporan Nilai Siswa"},
	lblReportFile:    {"en": "My-Grade-Report", "id": "Rapor-Nilai-Saya"},
	lblReportSheet:   {"en": "My Grades", "id": "Nilai Saya"},
}
