package planner

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Basename returns the input filename without directory or extension,
// used as the prefix for every output file.
func Basename(inputPath string) string {
	base := filepath.Base(inputPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// VariantPath builds the deterministic output path for one audio variant:
//
//	<outputDir>/<basename>_stream<index>_<variant>.<ext>
//
// Repeated runs produce the same path and overwrite.
func VariantPath(outputDir, basename string, audioIndex int, v Variant) string {
	file := fmt.Sprintf("%s_stream%d_%s.%s", basename, audioIndex, v.Name, v.Ext)
	return filepath.Join(outputDir, file)
}

// VisionPath builds the output path for the single vision variant:
//
//	<outputDir>/<basename>_vision.mp4
func VisionPath(outputDir, basename string) string {
	return filepath.Join(outputDir, basename+"_vision.mp4")
}
