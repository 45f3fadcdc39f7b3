package importer

import (
	"errors"
	"fmt"
	"strings"
)

const previewErrors = 5

var (
	ErrEmptyBatch  = errors.New("tidak ada data valid untuk diimport")
	ErrTooManyRows = errors.New("jumlah baris melebihi batas import")
)

// ValidationError membawa semua pesan pelanggaran dari satu file.
// Tidak ada data yang ditulis bila error ini dikembalikan.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return e.Summary()
}

// Preview: maksimal 5 pesan pertama untuk ditampilkan ke pengguna.
func (e *ValidationError) Preview() []string {
	if len(e.Messages) <= previewErrors {
		return e.Messages
	}
	return e.Messages[:previewErrors]
}

// Remaining: jumlah pesan di luar preview.
func (e *ValidationError) Remaining() int {
	if n := len(e.Messages) - previewErrors; n > 0 {
		return n
	}
	return 0
}

func (e *ValidationError) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Validasi gagal (%d error): ", len(e.Messages))
	b.WriteString(strings.Join(e.Preview(), "; "))
	if n := e.Remaining(); n > 0 {
		fmt.Fprintf(&b, " ... dan %d error lainnya", n)
	}
	return b.String()
}

// RowLimitError: file berisi lebih banyak baris data dari batas.
type RowLimitError struct {
	Rows  int
	Limit int
}

func (e *RowLimitError) Error() string {
	return fmt.Sprintf("file berisi %d baris data, maksimal %d baris per import", e.Rows, e.Limit)
}

func (e *RowLimitError) Unwrap() error { return ErrTooManyRows }

// StoreError membungkus kegagalan penyimpanan; pesan store diteruskan apa adanya.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string { return e.Err.Error() }

func (e *StoreError) Unwrap() error { return e.Err }
