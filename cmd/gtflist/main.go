package main

import (
	"log/slog"
	"os"

	"gtfkit"
	"gtfkit/annotation"
	"gtfkit/internal/config"
	"gtfkit/internal/logging"
)

// buildDemoDataset assembles a small in-memory annotation dataset.
// Parsing GTF files is not this library's job; a surrounding layer would
// normally hand us an already-parsed dataset.
func buildDemoDataset() *annotation.Dataset {
	ds := annotation.NewDataset("demo")

	type line struct {
		seqid, feature, start, end, strand, geneID string
	}

	lines := []line{
		{"chr1", "gene", "11869", "14409", "+", "ENSG00000223972"},
		{"chr1", "transcript", "11869", "14409", "+", "ENSG00000223972"},
		{"chr1", "exon", "11869", "12227", "+", "ENSG00000223972"},
		{"chr1", "exon", "12613", "12721", "+", "ENSG00000223972"},
		{"chr2", "gene", "38814", "41627", "-", "ENSG00000227232"},
		{"chr2", "transcript", "38814", "41627", "-", "ENSG00000227232"},
		{"chr2", "exon", "38814", "39929", "-", "ENSG00000227232"},
	}

	for _, l := range lines {
		rec := annotation.NewRecord(l.seqid, "ensembl", l.feature, l.start, l.end, ".", l.strand, ".")
		rec.SetAttribute("gene_id", l.geneID)
		ds.Append(rec)
	}

	return ds
}

func logTable(name string, table *gtfkit.ResultTable) {
	slog.Info("listing complete",
		"listing", name,
		"rows", table.Len(),
	)
	for _, row := range table.Rows() {
		slog.Info("row", "listing", name, "fields", row)
	}
}

func main() {
	cfg, err := config.Load("gtflist.toml")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger, closeFn := logging.Setup(logging.Options{
		Level:  cfg.SlogLevel(),
		SeqURL: cfg.SeqURL,
	})
	defer closeFn()

	slog.SetDefault(logger)
	slog.Info("Starting gtflist...")

	ds := buildDemoDataset()
	ds.Observe(annotation.NewLoggingObserver())

	features, err := gtfkit.ListFeatureValues(ds)
	if err != nil {
		slog.Error("feature listing failed", "error", err)
		closeFn()
		os.Exit(1)
	}
	logTable("features", features)

	seqids, err := gtfkit.ListSeqidValues(ds)
	if err != nil {
		slog.Error("seqid listing failed", "error", err)
		closeFn()
		os.Exit(1)
	}
	logTable("seqids", seqids)

	attrNames, err := gtfkit.ListAttributeNames(ds)
	if err != nil {
		slog.Error("attribute name listing failed", "error", err)
		closeFn()
		os.Exit(1)
	}
	logTable("attribute_names", attrNames)

	geneIDs, err := gtfkit.ListAttributeValues(ds, "gene_id")
	if err != nil {
		slog.Error("gene_id listing failed", "error", err)
		closeFn()
		os.Exit(1)
	}
	logTable("gene_ids", geneIDs)
}
