package merge

import (
	"fmt"

	"github.com/katalvlaran/dtwconn/metric"
	"github.com/katalvlaran/dtwconn/partition"
)

// PartialName returns the artifact path of one worker's range.
func PartialName(prefix string, r partition.Range) string {
	return fmt.Sprintf("%s%d_%doutput.txt", prefix, r.Begin, r.End)
}

// UnifiedName returns the path of the merged artifact. dataset and norm are
// descriptive tags used only for naming.
func UnifiedName(prefix, dataset, norm string, kind metric.Kind, window int) string {
	return fmt.Sprintf("%s%s%s%s_%d_unifiedOutput.txt", prefix, dataset, norm, kind, window)
}

// ManifestName returns the path of the partial-artifact manifest.
func ManifestName(prefix string) string {
	return prefix + "manifest.yaml"
}
