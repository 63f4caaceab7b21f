package networth

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/networth/date"
	"github.com/shopspring/decimal"
)

// Ledger CSV column names. They are matched exactly.
const (
	ColumnDate        = "Date"
	ColumnAmount      = "Amount"
	ColumnInstitution = "Institution"
)

// DecodeLedgerCSV reads a ledger export.
//
// The first record is the header and must contain the Date, Amount and
// Institution columns, in any order. Other columns are ignored. Dates are in
// the DD/MM/YYYY format, zero padding is optional.
//
// Any malformed row fails the whole decoding with a *ParseError, no partial ledger is returned.
func DecodeLedgerCSV(r io.Reader) (*Ledger, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 0 // every row must have as many fields as the header
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &ParseError{Line: 1, Err: errors.New("missing header")}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	// spreadsheet "CSV UTF-8" exports start with a byte order mark.
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	columns := make(map[string]int)
	for i, name := range header {
		columns[name] = i
	}
	var missing []string
	for _, name := range []string{ColumnDate, ColumnAmount, ColumnInstitution} {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &ParseError{Line: 1, Err: fmt.Errorf("missing required columns %s", strings.Join(missing, ", "))}
	}

	var txs []Transaction
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var line int
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				line = perr.Line
			}
			return nil, &ParseError{Line: line, Err: err}
		}
		line, _ := reader.FieldPos(0)

		tx, err := parseRecord(record, columns, line)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return NewLedger(txs...), nil
}

// parseRecord converts a csv record into a Transaction.
func parseRecord(record []string, columns map[string]int, line int) (Transaction, error) {
	rawDate := strings.TrimSpace(record[columns[ColumnDate]])
	on, err := date.ParseLedger(rawDate)
	if err != nil {
		return Transaction{}, &ParseError{Line: line, Column: ColumnDate, Value: rawDate, Err: err}
	}

	rawAmount := strings.TrimSpace(record[columns[ColumnAmount]])
	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return Transaction{}, &ParseError{Line: line, Column: ColumnAmount, Value: rawAmount, Err: err}
	}

	return Transaction{
		Date:        on,
		Amount:      amount,
		Institution: record[columns[ColumnInstitution]],
	}, nil
}
