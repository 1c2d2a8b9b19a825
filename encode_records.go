package payments

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// The input format is a tabular CSV stream:
//
//	type, client, tx, amount
//	deposit, 1, 1, 1.0
//	withdrawal, 1, 4, 1.5
//	dispute, 1, 1,
//
// Fields may carry surrounding whitespace. The amount column is absent or
// empty on dispute/resolve/chargeback rows; if present anyway it is ignored,
// those records reference the original transaction's amount.

// DecodeRecords decodes transaction records from r, one per CSV row, in file
// order. The sequence yields each record exactly once and never rewinds; a
// row that cannot be decoded yields a non-nil error and ends the sequence.
// A leading "type,client,tx,amount" header row is skipped.
func DecodeRecords(r io.Reader) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		cr := csv.NewReader(r)
		cr.FieldsPerRecord = -1 // the amount column is optional
		cr.TrimLeadingSpace = true

		for line := 1; ; line++ {
			row, err := cr.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, fmt.Errorf("line %d: %w", line, err))
				return
			}
			if line == 1 && len(row) > 0 && strings.TrimSpace(row[0]) == "type" {
				continue // header
			}
			rec, err := decodeRow(row)
			if err != nil {
				yield(nil, fmt.Errorf("line %d: %w", line, err))
				return
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}

// decodeRow turns one CSV row into the concrete record for its type column.
func decodeRow(row []string) (Record, error) {
	if len(row) < 3 {
		return nil, fmt.Errorf("expected at least 3 fields (type, client, tx), got %d", len(row))
	}
	kind := RecordType(strings.TrimSpace(row[0]))

	client, err := strconv.ParseUint(strings.TrimSpace(row[1]), 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid client id %q: %w", row[1], err)
	}
	tx, err := strconv.ParseUint(strings.TrimSpace(row[2]), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction id %q: %w", row[2], err)
	}

	var amountField string
	if len(row) > 3 {
		amountField = strings.TrimSpace(row[3])
	}

	switch kind {
	case KindDeposit, KindWithdrawal:
		if amountField == "" {
			return nil, fmt.Errorf("%s tx %d: missing amount", kind, tx)
		}
		amount, err := ParseAmount(amountField)
		if err != nil {
			return nil, fmt.Errorf("%s tx %d: %w", kind, tx, err)
		}
		if kind == KindDeposit {
			return NewDeposit(ClientID(client), TxID(tx), amount), nil
		}
		return NewWithdrawal(ClientID(client), TxID(tx), amount), nil
	case KindDispute:
		return NewDispute(ClientID(client), TxID(tx)), nil
	case KindResolve:
		return NewResolve(ClientID(client), TxID(tx)), nil
	case KindChargeback:
		return NewChargeback(ClientID(client), TxID(tx)), nil
	default:
		return nil, fmt.Errorf("unknown record type %q", row[0])
	}
}

// EncodeSnapshots writes the final per-client snapshots to w as CSV, one row
// per client in the order the sequence yields them:
//
//	client,available,held,total,locked
//	1,1.5000,0.0000,1.5000,false
func EncodeSnapshots(w io.Writer, snapshots iter.Seq[Snapshot]) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return fmt.Errorf("could not write snapshot header: %w", err)
	}
	for s := range snapshots {
		row := []string{
			strconv.FormatUint(uint64(s.Client), 10),
			s.Available.StringFixed(),
			s.Held.StringFixed(),
			s.Total.StringFixed(),
			strconv.FormatBool(s.Locked),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("could not write snapshot for client %d: %w", s.Client, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
