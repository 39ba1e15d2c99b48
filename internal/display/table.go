package display

import (
	"fmt"
	"strings"

	"github.com/voxprep/voxprep/internal/planner"
)

// PrintEstimateTable renders the per-stream storage estimate shown at the
// confirmation gate. Estimates are advisory; MB values are truncated
// integers, so short streams legitimately show 0.
func PrintEstimateTable(est planner.Estimate) {
	idxW := len("Stream")
	durW := len("Duration")
	whW := len("Whisper")
	flW := len("FLAC x3")
	totW := len("Est. MB")

	rows := make([][5]string, 0, len(est.Streams))
	for _, s := range est.Streams {
		row := [5]string{
			fmt.Sprintf("%d", s.AudioIndex),
			FormatSeconds(s.DurationSec),
			fmt.Sprintf("%d MB", s.WhisperMB),
			fmt.Sprintf("%d MB", 3*s.FlacMB),
			fmt.Sprintf("%d MB", s.TotalMB),
		}
		rows = append(rows, row)
		idxW = max(idxW, len(row[0]))
		durW = max(durW, len(row[1]))
		whW = max(whW, len(row[2]))
		flW = max(flW, len(row[3]))
		totW = max(totW, len(row[4]))
	}

	header := fmt.Sprintf("  %-*s  %-*s  %-*s  %-*s  %-*s",
		idxW, "Stream",
		durW, "Duration",
		whW, "Whisper",
		flW, "FLAC x3",
		totW, "Est. MB",
	)
	fmt.Println(header)
	fmt.Println("  " + strings.Repeat("─", len(header)-2))

	for _, r := range rows {
		fmt.Printf("  %-*s  %-*s  %-*s  %-*s  %-*s\n",
			idxW, r[0], durW, r[1], whW, r[2], flW, r[3], totW, r[4])
	}

	fmt.Println("  " + strings.Repeat("─", len(header)-2))
	fmt.Printf("  Estimated total: ~%d MB\n", est.TotalMB)
	fmt.Println()
}
