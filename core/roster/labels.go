package roster

import "github.com/trezcool/rapor/core"

// translation keys
const (
	lblNo        = "roster.col.no"
	lblName      = "roster.col.name"
	lblNISN      = "roster.col.nisn"
	lblGender    = "roster.col.gender"
	lblClass     = "roster.col.class"
	lblAddress   = "roster.col.address"
	lblPhone     = "roster.col.phone"
	lblTitle     = "roster.title"
	lblFilename  = "roster.filename"
	lblSheetName = "roster.sheetName"
)

var Labels = core.Translations{
	lblNo:        {"en": "No", "id": "No"},
	lblName:      {"en": "Name", "id": "Nama"},
	lblNISN:      {"en": "NISN", "id": "NISN"},
	lblGender:    {"en": "Gender", "id": "Jenis Kelamin"},
	lblClass:     {"en": "Class", "id": "Kelas"},
	lblAddress:   {"en": "Address", "id": "Alamat"},
	lblPhone:     {"en": "Phone", "id": "No HP"},
	lblTitle:     {"en": "Student List", "id": "Daftar Siswa"},
	lblFilename:  {"en": "Student-Data", "id": "Data-Siswa"},
	lblSheetName: {"en": "Student Data", "id": "Data Siswa"},
}
