package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// readFrames parses CSV input where each record is one frame. Lines
// starting with '#' are ignored and every record must have the same width.
func readFrames(r io.Reader) ([][]float64, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	var frames [][]float64
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read frame %d: %w", len(frames), err)
		}
		frame := make([]float64, len(rec))
		for i, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("frame %d column %d: %w", len(frames), i, err)
			}
			frame[i] = v
		}
		frames = append(frames, frame)
	}
	return frames, nil
}

// printFrame writes " Org: ... Updated: ..." for one frame.
func printFrame(w io.Writer, org, updated []float64) error {
	var b strings.Builder
	b.WriteString(" Org: ")
	writeValues(&b, org)
	b.WriteString(" Updated: ")
	writeValues(&b, updated)
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

func writeValues(b *strings.Builder, vals []float64) {
	for _, v := range vals {
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		b.WriteByte(' ')
	}
}
