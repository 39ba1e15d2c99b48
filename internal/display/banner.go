package display

import (
	"fmt"
	"os"

	"github.com/voxprep/voxprep/internal/term"
)

// PrintBanner prints the ASCII art banner; magenta when colors are enabled.
func PrintBanner() {
	art := ` __     __        ____
 \ \   / /____  _|  _ \ _ __ ___ _ __
  \ \ / / _ \ \/ / |_) | '__/ _ \ '_ \
   \ V / (_) >  <|  __/| | |  __/ |_) |
    \_/ \___/_/\_\_|   |_|  \___| .__/
                                |_|
`
	if term.Enabled() {
		term.Magenta.Fprint(os.Stdout, art)
		fmt.Fprintln(os.Stdout)
		return
	}
	fmt.Fprint(os.Stdout, art)
	fmt.Fprintln(os.Stdout)
}
