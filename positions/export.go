package positions

import (
	"github.com/dasnellings/breseqTools/genbank"
	"log"
)

// Export writes the CDS coordinates of a single-record GenBank file to
// outCsv, and to outBed when it is not empty.
func Export(gbFile, outCsv, outBed string, verbose int) {
	records := genbank.Read(gbFile)
	if len(records) != 1 {
		log.Fatalf("ERROR: expected exactly one record in %s, found %d\n", gbFile, len(records))
	}

	genes := FromRecord(records[0])
	if verbose > 0 {
		log.Printf("%s: %d features, %d named CDS\n", records[0].ID(), len(records[0].Features), len(genes))
	}

	Write(outCsv, genes)
	log.Printf("Wrote %d genes to %s\n", len(genes), outCsv)
	if outBed != "" {
		WriteBed(outBed, genes)
		log.Println("Wrote BED:", outBed)
	}
}
