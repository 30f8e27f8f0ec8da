package score

// English letter frequencies in percent, from a 40,000 word specimen.
// Lowercase only; uppercase input is folded before lookup.
var letterWeights = map[byte]float64{
	'a': 8.12, 'b': 1.49, 'c': 2.71, 'd': 4.32, 'e': 12.02,
	'f': 2.30, 'g': 2.03, 'h': 5.92, 'i': 7.31, 'j': 0.10,
	'k': 0.69, 'l': 3.98, 'm': 2.61, 'n': 6.95, 'o': 7.68,
	'p': 1.82, 'q': 0.11, 'r': 6.02, 's': 6.28, 't': 9.10,
	'u': 2.88, 'v': 1.11, 'w': 2.09, 'x': 0.17, 'y': 2.11,
	'z': 0.07,
}

const (
	// DefaultSpaceWeight is the weight given to ' '. Space is absent from
	// the letter table and real messages are full of it.
	DefaultSpaceWeight = 10.0

	// OtherWeight is the flat weight of every byte that is not a letter or space.
	OtherWeight = 1.0
)

// Table is a read-only mapping from folded byte to weight.
type Table [256]float64

// baseTable is built once at init and copied by NewTable.
var baseTable = func() Table {
	var t Table
	for i := range t {
		t[i] = OtherWeight
	}
	for c, w := range letterWeights {
		t[c] = w
	}
	t[' '] = DefaultSpaceWeight
	return t
}()

// NewTable returns the English table with the given space weight.
func NewTable(spaceWeight float64) Table {
	t := baseTable
	t[' '] = spaceWeight
	return t
}

// Weight returns the weight of c, folding ASCII uppercase.
func (t *Table) Weight(c byte) float64 {
	return t[fold(c)]
}

func fold(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
