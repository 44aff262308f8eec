package model

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

const (
	csvFrontColumn = "front"
	csvBackColumn  = "back"
)

// AddCardsFromCSV appends one card per row of a CSV file.
// The first row is a header that must name a front and a back column.
func (deck *Deck) AddCardsFromCSV(r io.Reader) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return ErrInvalidCSVHeader
	}
	if err != nil {
		return fmt.Errorf("reader.Read(header) > %w", err)
	}

	frontIndex, backIndex := -1, -1
	for i, column := range header {
		switch column {
		case csvFrontColumn:
			frontIndex = i
		case csvBackColumn:
			backIndex = i
		}
	}
	if frontIndex < 0 || backIndex < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidCSVHeader, header)
	}

	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reader.Read(line %d) > %w", line, err)
		}
		if frontIndex >= len(record) || backIndex >= len(record) {
			return fmt.Errorf("line %d: %w", line, ErrInvalidCardPair)
		}
		if err := deck.AddCard([]string{record[frontIndex], record[backIndex]}); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
}

// WriteCSV writes the cards as front,back rows with CRLF line endings.
func (deck *Deck) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true

	if err := writer.Write([]string{csvFrontColumn, csvBackColumn}); err != nil {
		return fmt.Errorf("writer.Write(header) > %w", err)
	}
	for _, card := range deck.Cards {
		if err := writer.Write([]string{card.Front.Text(), card.Back.Text()}); err != nil {
			return fmt.Errorf("writer.Write(%s) > %w", card.ID, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("writer.Flush > %w", err)
	}
	return nil
}
