package inmem

import (
	"sync"

	"github.com/trezcool/rapor/core/grade"
)

type (
	// DB holds the process-local state. Nothing in it outlives the process.
	DB struct {
		sheet *sheetTable
	}

	sheetTable struct {
		mutex sync.RWMutex
		table map[string]*grade.Sheet
	}
)

func Open() *DB {
	return &DB{
		sheet: &sheetTable{table: make(map[string]*grade.Sheet)},
	}
}
