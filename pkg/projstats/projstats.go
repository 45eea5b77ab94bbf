// Package projstats exposes the scanner and report export for embedding.
package projstats

import (
	"context"

	"github.com/guidefari/projstats/internal/core"
	"github.com/guidefari/projstats/internal/report"
)

type (
	ScanConfig   = core.ScanConfig
	ScanReport   = core.ScanReport
	LanguageStat = core.LanguageStat
	FileStat     = core.FileStat
	FileTimeInfo = core.FileTimeInfo
)

func Run(ctx context.Context, config ScanConfig) (*ScanReport, error) {
	scanner := core.NewScanner(config)
	return scanner.Scan(ctx)
}

// Export renders the plain-text report for rep.
func Export(rep *ScanReport, scanPathLabel string) []byte {
	return report.Export(rep, scanPathLabel)
}
