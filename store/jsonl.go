// SPDX-License-Identifier: MIT

package store

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Encode writes a header line followed by one JSON record per line.
func Encode(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw) // Encode appends '\n'
	enc.SetEscapeHTML(false)
	if err := enc.Encode(NewHeader(len(records))); err != nil {
		return fmt.Errorf("store.Encode: header: %w", err)
	}
	for i := range records {
		if err := enc.Encode(&records[i]); err != nil {
			return fmt.Errorf("store.Encode: record %q: %w", records[i].ID, err)
		}
	}

	return bw.Flush()
}

// Decode reads what Encode wrote and validates it.
//
// Errors:
//   - ErrTruncated: no header, fewer records than declared, or a final line
//     cut off mid-record.
//   - ErrInconsistent: unknown header format, a malformed line, more records
//     than declared, or records failing Validate.
func Decode(r io.Reader) ([]Record, error) {
	br := bufio.NewReader(r)

	var (
		hdr     Header
		haveHdr bool
		records []Record
		lineNo  int
	)
	for {
		line, readErr := br.ReadBytes('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("store.Decode: %w", readErr)
		}
		last := errors.Is(readErr, io.EOF)
		line = bytes.TrimSpace(line)
		if len(line) > 0 {
			lineNo++
			if err := decodeLine(line, lineNo, last, &hdr, &haveHdr, &records); err != nil {
				return nil, fmt.Errorf("store.Decode: %w", err)
			}
		}
		if last {
			break
		}
	}

	if !haveHdr {
		return nil, fmt.Errorf("store.Decode: missing header: %w", ErrTruncated)
	}
	if err := hdr.checkCount(len(records)); err != nil {
		return nil, fmt.Errorf("store.Decode: %w", err)
	}
	if err := Validate(records); err != nil {
		return nil, fmt.Errorf("store.Decode: %w", err)
	}

	return records, nil
}

func decodeLine(line []byte, lineNo int, last bool, hdr *Header, haveHdr *bool, records *[]Record) error {
	var target any
	var rec Record
	if *haveHdr {
		target = &rec
	} else {
		target = hdr
	}

	if err := json.Unmarshal(line, target); err != nil {
		var syn *json.SyntaxError
		if last && (errors.As(err, &syn) || errors.Is(err, io.ErrUnexpectedEOF)) {
			return fmt.Errorf("line %d: %v: %w", lineNo, err, ErrTruncated)
		}
		return fmt.Errorf("line %d: %v: %w", lineNo, err, ErrInconsistent)
	}

	if !*haveHdr {
		*haveHdr = true
		return hdr.check()
	}
	*records = append(*records, rec)

	return nil
}
