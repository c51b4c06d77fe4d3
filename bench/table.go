package bench

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteTable renders ms as the fixed-width comparison table, one row per
// measurement and a rule after each dataset. Times are in seconds.
//
//	Dataset    | Algo     | Run 1  | Run 2  | Run 3  | Avg    | Std    | Cost
//	---------------------------------------------------------------------------
//	NY         | Kruskal  | 0.41   | 0.40   | 0.40   | 0.40   | 0.01   | 12345678
func WriteTable(w io.Writer, ms []Measurement) error {
	runs := 0
	for _, m := range ms {
		if len(m.Durations) > runs {
			runs = len(m.Durations)
		}
	}

	bw := bufio.NewWriter(w)
	header := []string{fmt.Sprintf("%-10s", "Dataset"), fmt.Sprintf("%-8s", "Algo")}
	for i := 1; i <= runs; i++ {
		header = append(header, fmt.Sprintf("%-6s", fmt.Sprintf("Run %d", i)))
	}
	header = append(header, fmt.Sprintf("%-6s", "Avg"), fmt.Sprintf("%-6s", "Std"), fmt.Sprintf("%-10s", "Cost"))
	line := strings.Join(header, " | ")
	rule := strings.Repeat("-", len(line))
	fmt.Fprintln(bw, line)
	fmt.Fprintln(bw, rule)

	for i, m := range ms {
		cells := []string{fmt.Sprintf("%-10s", m.Dataset), fmt.Sprintf("%-8s", m.Algorithm)}
		for r := 0; r < runs; r++ {
			if r < len(m.Durations) {
				cells = append(cells, fmt.Sprintf("%-6.2f", m.Durations[r].Seconds()))
			} else {
				cells = append(cells, fmt.Sprintf("%-6s", "-"))
			}
		}
		cells = append(cells,
			fmt.Sprintf("%-6.2f", m.Mean().Seconds()),
			fmt.Sprintf("%-6.2f", m.StdDev().Seconds()),
			fmt.Sprintf("%d", m.Cost))
		fmt.Fprintln(bw, strings.Join(cells, " | "))

		if i == len(ms)-1 || ms[i+1].Dataset != m.Dataset {
			fmt.Fprintln(bw, rule)
		}
	}

	return bw.Flush()
}
