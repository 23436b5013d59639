// genotypetable2fasta converts a bcftools genotype table into a multi-FASTA
// file with one sequence per individual. Heterozygous calls become IUPAC
// ambiguity codes; missing and spanning-deletion calls become gaps.
//
// The table is expected to come from:
//
//	bcftools query -f '[%TGT\t]\n' variants.vcf.gz > file1.txt
//
// Run with no arguments to read file1.txt and write file2.fasta in the
// working directory.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/storage"
	"github.com/carbocation/genotypefasta"
	_ "github.com/carbocation/genotypefasta/compileinfoprint"
)

func main() {
	cfg := genotypefasta.DefaultConfig()

	var unknown string
	flag.StringVar(&cfg.InputPath, "input", cfg.InputPath, "Path to the genotype table, one site per line and one individual per column. May be gzip, bzip2, xz or zip compressed, and may be a gs:// path.")
	flag.StringVar(&cfg.OutputPath, "output", cfg.OutputPath, "Path to the FASTA file to write. Overwritten if it exists.")
	flag.StringVar(&cfg.Delimiter, "delim", cfg.Delimiter, "Column delimiter: 'tab', 'auto' to detect it, or a single character.")
	flag.StringVar(&unknown, "unknown", cfg.Unknown.String(), "What to do with genotype calls that have no IUPAC symbol: 'gap' writes '-', 'error' aborts, 'passthrough' copies the call verbatim.")
	flag.StringVar(&cfg.Prefix, "prefix", cfg.Prefix, "Prefix for record names, followed by a 1-based counter.")
	flag.StringVar(&cfg.NamesPath, "names", "", "(Optional) File with one sample name per line in column order, e.g. from 'bcftools query -l'. Named columns use the name instead of the prefix. May be a gs:// path.")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "Converts a genotype table into a multi-FASTA file of IUPAC-encoded sequences.")
		flag.PrintDefaults()
	}
	flag.Parse()

	policy, err := genotypefasta.ParseUnknownPolicy(unknown)
	if err != nil {
		flag.Usage()
		log.Fatalln(err)
	}
	cfg.Unknown = policy

	if err := cfg.Validate(); err != nil {
		flag.Usage()
		log.Fatalln(err)
	}

	var client *storage.Client
	if genotypefasta.IsGoogleStoragePath(cfg.InputPath) ||
		genotypefasta.IsGoogleStoragePath(cfg.NamesPath) {
		client, err = storage.NewClient(context.Background())
		if err != nil {
			log.Fatalln(err)
		}
		defer client.Close()
	}

	summary, err := genotypefasta.Convert(context.Background(), cfg, client)
	if err != nil {
		log.Fatalln(err)
	}

	log.Printf("Wrote %d sequences of %d sites to %s (%d empty columns skipped, %d unrecognized calls)\n",
		summary.Records, summary.Sites, cfg.OutputPath, summary.SkippedColumns, summary.UnrecognizedTotal())
}
