package domain

// ReferenceData is the read-only static data boundary. Implementations
// are loaded once before any message flows and never mutated afterwards.
type ReferenceData interface {
	Bond(cusip string) (Bond, bool)
	Instruments() []Bond
	Sectors() []BucketedSector
	Sector(name string) (BucketedSector, bool)
	SectorOf(cusip string) (string, bool)
}
