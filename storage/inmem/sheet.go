package inmem

import (
	"time"

	"github.com/trezcool/rapor/core/grade"
)

type sheetRepository struct {
	db *sheetTable
}

func NewSheetRepository(db *DB) grade.SheetRepository {
	return &sheetRepository{db: db.sheet}
}

func (repo *sheetRepository) CreateSheet(sh grade.Sheet) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	sh = sh.Clone()
	repo.db.table[sh.ID] = &sh
	return nil
}

func (repo *sheetRepository) GetSheet(id string) (grade.Sheet, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if sh, ok := repo.db.table[id]; ok {
		return sh.Clone(), nil
	}
	return grade.Sheet{}, grade.ErrSheetNotFound
}

// UpdateSheet runs `fn` on a copy of the sheet and keeps the copy only if `fn` succeeds.
func (repo *sheetRepository) UpdateSheet(id string, fn func(sh *grade.Sheet) error) (grade.Sheet, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	stored, ok := repo.db.table[id]
	if !ok {
		return grade.Sheet{}, grade.ErrSheetNotFound
	}
	sh := stored.Clone()
	if err := fn(&sh); err != nil {
		return grade.Sheet{}, err
	}
	repo.db.table[id] = &sh
	return sh.Clone(), nil
}

func (repo *sheetRepository) DeleteSheet(id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return grade.ErrSheetNotFound
	}
	delete(repo.db.table, id)
	return nil
}

func (repo *sheetRepository) DeleteSheetsIdleSince(t time.Time) (int, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	var n int
	for id, sh := range repo.db.table {
		if sh.UpdatedAt.Before(t) {
			delete(repo.db.table, id)
			n++
		}
	}
	return n, nil
}
