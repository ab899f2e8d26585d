package selfplay

import (
	"encoding/csv"
	"io"
	"strconv"
	"sync"

	"sternhalma_go/internal/game"
)

// Columns is the width of one dataset row:
// 867 tensor cells, from index, to index, outcome, game id.
const Columns = game.TensorLen + 4

// Writer serialises records as CSV rows. It is safe for concurrent use.
type Writer struct {
	mu sync.Mutex
	w  *csv.Writer
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: csv.NewWriter(w)}
}

// WriteRecord writes one row per sample and flushes.
func (wr *Writer) WriteRecord(rec *Record) error {
	rows := make([][]string, 0, len(rec.Samples))
	id := rec.ID.String()
	for i := range rec.Samples {
		s := &rec.Samples[i]
		row := make([]string, 0, Columns)
		for _, v := range s.Tensor {
			if v == 0 {
				row = append(row, "0")
			} else {
				row = append(row, "1")
			}
		}
		row = append(row,
			strconv.Itoa(game.CoordIndex(s.Move.From)),
			strconv.Itoa(game.CoordIndex(s.Move.To)),
			strconv.Itoa(rec.Outcome(s.Mover)),
			id,
		)
		rows = append(rows, row)
	}

	wr.mu.Lock()
	defer wr.mu.Unlock()
	if err := wr.w.WriteAll(rows); err != nil {
		return err
	}
	return wr.w.Error()
}
