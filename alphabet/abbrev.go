package alphabet

// Three letter abbreviations of the amino acid symbols. The stop symbol is
// written as "Ter".
var aminoNames = map[byte]string{
	'A': "Ala", 'R': "Arg", 'N': "Asn", 'D': "Asp", 'C': "Cys",
	'E': "Glu", 'Q': "Gln", 'G': "Gly", 'H': "His", 'I': "Ile",
	'L': "Leu", 'K': "Lys", 'M': "Met", 'F': "Phe", 'P': "Pro",
	'S': "Ser", 'T': "Thr", 'W': "Trp", 'Y': "Tyr", 'V': "Val",

	// ambiguous and rare residues
	'B': "Asx", 'Z': "Glx", 'J': "Xle", 'U': "Sec", 'O': "Pyl",
	'X': "Xaa",

	'*': "Ter",
}

var aminoLetters map[string]byte

func init() {
	aminoLetters = make(map[string]byte, len(aminoNames)+1)
	for letter, name := range aminoNames {
		aminoLetters[upper(name)] = letter
	}
	aminoLetters["UNK"] = 'X'
}

// ThreeLetter returns the three letter abbreviation of an amino acid symbol,
// e.g., "Trp" for 'W'. The second return value is false if aa is not in the
// amino acid alphabet.
func ThreeLetter(aa byte) (string, bool) {
	name, ok := aminoNames[aa]
	return name, ok
}

// FromThreeLetter is the inverse of ThreeLetter. Matching ignores case, and
// "UNK" is accepted as an alias of "Xaa".
func FromThreeLetter(name string) (byte, bool) {
	aa, ok := aminoLetters[upper(name)]
	return aa, ok
}

func upper(s string) string {
	bs := []byte(s)
	for i, b := range bs {
		if b >= 'a' && b <= 'z' {
			bs[i] = b - ('a' - 'A')
		}
	}
	return string(bs)
}
