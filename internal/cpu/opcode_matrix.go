package cpu

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

var matrixHeader = []string{"opcode", "name", "mode", "bytes", "cycles", "page_cycle", "official", "implemented"}

// WriteCSV dumps the opcode matrix, one row per byte value.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(matrixHeader); err != nil {
		return fmt.Errorf("couldn't write csv header: %w", err)
	}

	record := make([]string, len(matrixHeader))
	for _, d := range t.descs {
		record[0] = fmt.Sprintf("0x%02X", d.Code)
		record[1] = d.Name
		record[2] = d.Mode.String()
		record[3] = strconv.Itoa(int(d.Bytes))
		record[4] = strconv.Itoa(int(d.Cycles))
		record[5] = strconv.FormatBool(d.PageCycle)
		record[6] = strconv.FormatBool(d.Official)
		record[7] = strconv.FormatBool(d.Implemented())
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("couldn't write record for opcode 0x%02X: %w", d.Code, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
