/*
 * Copyright (c) 2022 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

// IdentifierColumn is the header name column 0 is mapped to.
const IdentifierColumn = "identifier"

// Record is one row of the input file. Only column 0 is used; the rest of
// the row is accepted and ignored.
type Record struct {
	Identifier string `csv:"identifier"`
}

// CSVStorage reads and writes records in a comma separated file.
type CSVStorage struct {
	path      string
	hasHeader bool
	file      *os.File
}

// NewCSVStorage returns a storage over the file at path. When hasHeader
// is set the first row is a header and is skipped whatever its names are.
func NewCSVStorage(path string, hasHeader bool) *CSVStorage {
	return &CSVStorage{path: path, hasHeader: hasHeader}
}

func (storage *CSVStorage) open(readOnly, truncate bool) error {
	mode := os.O_RDWR | os.O_CREATE
	if truncate {
		mode |= os.O_TRUNC
	}

	if readOnly {
		mode = os.O_RDONLY
	}

	file, err := os.OpenFile(storage.path, mode, 0644)
	if err != nil {
		return errors.Wrapf(err, "unable to open %s", storage.path)
	}

	storage.file = file
	return nil
}

func (storage *CSVStorage) Close() {
	if storage.file != nil {
		_ = storage.file.Close()
		storage.file = nil
	}
}

// FetchRecords parses every row of the file. A row with a different
// number of columns than the first one is a parse error.
func (storage *CSVStorage) FetchRecords() ([]Record, error) {
	if err := storage.open(true, false); err != nil {
		return nil, err
	}
	defer storage.Close()

	reader := &identifierReader{
		reader:    csv.NewReader(storage.file),
		hasHeader: storage.hasHeader,
	}

	rows := make([]Record, 0)
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, errors.Wrapf(err, "unable to parse %s", storage.path)
	}

	log.Debug().Str("path", storage.path).Int("records", len(rows)).Msg("csv records loaded")
	return rows, nil
}

// FetchIdentifiers returns column 0 of every row, in file order.
func (storage *CSVStorage) FetchIdentifiers() ([]string, error) {
	rows, err := storage.FetchRecords()
	if err != nil {
		return nil, err
	}

	identifiers := make([]string, len(rows))
	for i := range rows {
		identifiers[i] = rows[i].Identifier
	}

	return identifiers, nil
}

// SaveRecords overwrites the file with a header row and the records.
func (storage *CSVStorage) SaveRecords(rows []Record) error {
	if err := storage.open(false, true); err != nil {
		return err
	}
	defer storage.Close()

	return gocsv.MarshalFile(rows, storage.file)
}

// identifierReader feeds gocsv a header whose first column is always
// IdentifierColumn, so that column 0 is decoded regardless of how the
// file names it or whether it has a header at all.
type identifierReader struct {
	reader    *csv.Reader
	hasHeader bool

	headerSent bool
	pending    []string
}

func (r *identifierReader) Read() ([]string, error) {
	if !r.headerSent {
		r.headerSent = true

		first, err := r.reader.Read()
		if err != nil {
			return nil, err
		}
		if !r.hasHeader {
			r.pending = first
		}

		return headerFor(len(first)), nil
	}

	if r.pending != nil {
		row := r.pending
		r.pending = nil
		return row, nil
	}

	return r.reader.Read()
}

func (r *identifierReader) ReadAll() ([][]string, error) {
	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}

func headerFor(columns int) []string {
	header := make([]string, columns)
	header[0] = IdentifierColumn
	for i := 1; i < columns; i++ {
		header[i] = fmt.Sprintf("column_%d", i)
	}
	return header
}
