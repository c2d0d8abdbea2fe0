package schoolapi

import (
	"encoding/json"
	"strings"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/rapor/core/grade"
	"github.com/trezcool/rapor/core/roster"
)

// wire shapes of the school API

type (
	nilai struct {
		IDSiswa    int      `json:"id_siswa"`
		IDMapel    int      `json:"id_mapel"`
		NilaiUTS   null.Int `json:"nilai_uts"`
		NilaiUAS   null.Int `json:"nilai_uas"`
		NilaiAkhir null.Int `json:"nilai_akhir"`
		Mapel      *mapel   `json:"mapel"`
	}

	mapel struct {
		NamaMapel string `json:"nama_mapel"`
		Kategori  string `json:"kategori"`
	}

	siswaNilai struct {
		IDSiswa int    `json:"id_siswa"`
		Nama    string `json:"nama"`
		NISN    string `json:"nisn"`
		Nilai   *nilai `json:"nilai"`
	}

	mapelDiampu struct {
		IDAmpu    int          `json:"id_ampu"`
		IDKelas   int          `json:"id_kelas"`
		KelasNama string       `json:"kelas_nama"`
		IDMapel   int          `json:"id_mapel"`
		MapelNama string       `json:"mapel_nama"`
		Students  []siswaNilai `json:"students"`
	}

	nilaiCreate struct {
		IDSiswa    int `json:"id_siswa"`
		IDMapel    int `json:"id_mapel"`
		NilaiUTS   int `json:"nilai_uts"`
		NilaiUAS   int `json:"nilai_uas"`
		NilaiAkhir int `json:"nilai_akhir"`
	}

	siswa struct {
		IDSiswa      int         `json:"id_siswa"`
		IDKelas      null.Int    `json:"id_kelas"`
		NISN         string      `json:"nisn"`
		Nama         string      `json:"nama"`
		JenisKelamin string      `json:"jenis_kelamin"`
		Alamat       null.String `json:"alamat"`
		NoHP         null.String `json:"no_hp"`
	}

	kelas struct {
		IDKelas int    `json:"id_kelas"`
		Kelas   string `json:"kelas"`
		Jurusan string `json:"jurusan"`
	}

	// errorBody is the error payload of the school API: `detail` is either a message or a list of validation errors.
	errorBody struct {
		Detail json.RawMessage `json:"detail"`
	}
)

func (ma mapelDiampu) assignment() grade.TeachingAssignment {
	ta := grade.TeachingAssignment{
		ID:          ma.IDAmpu,
		ClassID:     ma.IDKelas,
		ClassName:   ma.KelasNama,
		SubjectID:   ma.IDMapel,
		SubjectName: ma.MapelNama,
		Students:    make([]grade.EnrolledStudent, 0, len(ma.Students)),
	}
	for _, s := range ma.Students {
		st := grade.EnrolledStudent{ID: s.IDSiswa, Name: s.Nama, Number: s.NISN}
		if s.Nilai != nil {
			st.Midterm = s.Nilai.NilaiUTS
			st.FinalExam = s.Nilai.NilaiUAS
		}
		ta.Students = append(ta.Students, st)
	}
	return ta
}

func (n nilai) subjectGrade() grade.SubjectGrade {
	sg := grade.SubjectGrade{
		SubjectID:  n.IDMapel,
		Midterm:    n.NilaiUTS,
		FinalExam:  n.NilaiUAS,
		FinalScore: n.NilaiAkhir,
	}
	if n.Mapel != nil {
		sg.SubjectName = n.Mapel.NamaMapel
		sg.Category = n.Mapel.Kategori
	}
	return sg
}

func toNilaiCreate(sg grade.SaveGrade) nilaiCreate {
	return nilaiCreate{
		IDSiswa:    sg.StudentID,
		IDMapel:    sg.SubjectID,
		NilaiUTS:   sg.Midterm,
		NilaiUAS:   sg.FinalExam,
		NilaiAkhir: sg.FinalScore,
	}
}

func (s siswa) student() roster.Student {
	return roster.Student{
		ID:      s.IDSiswa,
		ClassID: s.IDKelas.Int,
		Number:  s.NISN,
		Name:    s.Nama,
		Gender:  s.JenisKelamin,
		Address: s.Alamat.String,
		Phone:   s.NoHP.String,
	}
}

func (k kelas) class() roster.Class {
	return roster.Class{ID: k.IDKelas, Name: k.Kelas, Major: k.Jurusan}
}

// message extracts the human readable part of an error response body, if any.
func message(body string) string {
	var eb errorBody
	if err := json.Unmarshal([]byte(body), &eb); err != nil || len(eb.Detail) == 0 {
		return ""
	}

	var detail string
	if err := json.Unmarshal(eb.Detail, &detail); err == nil {
		return detail
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(eb.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}
