package domain

import "sort"

// Position tracks per-book quantities for one instrument. Quantities are
// signed; a sell books a negative quantity.
type Position struct {
	Product Bond
	books   map[string]int64
}

// NewPosition creates an empty position for an instrument.
func NewPosition(product Bond) *Position {
	return &Position{
		Product: product,
		books:   make(map[string]int64),
	}
}

// Quantity returns the position in one book; zero if the book has never
// traded.
func (p *Position) Quantity(book string) int64 {
	return p.books[book]
}

// Aggregate sums the position across all books.
func (p *Position) Aggregate() int64 {
	var total int64
	for _, q := range p.books {
		total += q
	}
	return total
}

// Add books a signed quantity against a book.
func (p *Position) Add(book string, quantity int64) {
	p.books[book] += quantity
}

// Books returns the books that have traded, sorted for stable output.
func (p *Position) Books() []string {
	out := make([]string, 0, len(p.books))
	for b := range p.books {
		out = append(out, b)
	}
	sort.Strings(out)
	return out
}
