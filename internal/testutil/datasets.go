package testutil

import "gtfkit/annotation"

// SampleDataset creates a small annotation dataset covering two sequences,
// three feature kinds and a handful of attributes.
//
// Feature counts: 2 gene, 3 exon, 2 CDS. Seqid counts: 4 chr1, 3 chr2.
// Attributes: gene_id on every record, transcript_id on all but the genes,
// gene_biotype on genes only.
func SampleDataset() *annotation.Dataset {
	ds := annotation.NewDataset("sample")

	type line struct {
		seqid, feature, start, end, strand string
		attrs                              [][2]string
	}

	lines := []line{
		{"chr1", "gene", "1000", "5000", "+", [][2]string{
			{"gene_id", "g1"}, {"gene_biotype", "protein_coding"},
		}},
		{"chr1", "exon", "1000", "1500", "+", [][2]string{
			{"gene_id", "g1"}, {"transcript_id", "g1.t1"},
		}},
		{"chr1", "CDS", "1100", "1500", "+", [][2]string{
			{"gene_id", "g1"}, {"transcript_id", "g1.t1"},
		}},
		{"chr1", "exon", "2000", "2500", "+", [][2]string{
			{"gene_id", "g1"}, {"transcript_id", "g1.t1"},
		}},
		{"chr2", "gene", "300", "900", "-", [][2]string{
			{"gene_id", "g2"}, {"gene_biotype", "lncRNA"},
		}},
		{"chr2", "exon", "300", "600", "-", [][2]string{
			{"gene_id", "g2"}, {"transcript_id", "g2.t1"},
		}},
		{"chr2", "CDS", "350", "600", "-", [][2]string{
			{"gene_id", "g2"}, {"transcript_id", "g2.t1"},
		}},
	}

	for _, l := range lines {
		rec := annotation.NewRecord(l.seqid, "test", l.feature, l.start, l.end, ".", l.strand, ".")
		for _, kv := range l.attrs {
			rec.SetAttribute(kv[0], kv[1])
		}
		ds.Append(rec)
	}

	return ds
}

// DatasetWithFeatures creates a dataset with one record per given feature
// value and constant remaining columns
func DatasetWithFeatures(features ...string) *annotation.Dataset {
	ds := annotation.NewDataset("features")
	for _, f := range features {
		rec := annotation.NewRecord("chr1", "test", f, "1", "100", ".", "+", ".")
		rec.SetAttribute("gene_id", "g1")
		ds.Append(rec)
	}
	return ds
}
