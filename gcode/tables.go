package gcode

import "sort"

// Standard is NCBI translation table 1.
var Standard = newTable(1, "Standard",
	"FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
	"---M---------------M---------------M----------------------------")

var tables = map[int]*Table{
	1: Standard,
	2: newTable(2, "Vertebrate Mitochondrial",
		"FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIMMTTTTNNKKSS**VVVVAAAADDEEGGGG",
		"--------------------------------MMMM---------------M------------"),
	3: newTable(3, "Yeast Mitochondrial",
		"FFLLSSSSYY**CCWWTTTTPPPPHHQQRRRRIIMMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		"----------------------------------MM----------------------------"),
	4: newTable(4, "Mold, Protozoan, and Coelenterate Mitochondrial",
		"FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		"--MM---------------M------------MMMM---------------M------------"),
	5: newTable(5, "Invertebrate Mitochondrial",
		"FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIMMTTTTNNKKSSSSVVVVAAAADDEEGGGG",
		"---M----------------------------MMMM---------------M------------"),
	6: newTable(6, "Ciliate, Dasycladacean and Hexamita Nuclear",
		"FFLLSSSSYYQQCC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		"-----------------------------------M----------------------------"),
	9: newTable(9, "Echinoderm and Flatworm Mitochondrial",
		"FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIIMTTTTNNNKSSSSVVVVAAAADDEEGGGG",
		"-----------------------------------M---------------M------------"),
	10: newTable(10, "Euplotid Nuclear",
		"FFLLSSSSYY**CCCWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		"-----------------------------------M----------------------------"),
	11: newTable(11, "Bacterial, Archaeal and Plant Plastid",
		"FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		"---M---------------M------------MMMM---------------M------------"),
}

// ByID returns the NCBI translation table with the given number.
func ByID(id int) (*Table, error) {
	t, ok := tables[id]
	if !ok {
		return nil, &UnknownTableError{ID: id}
	}
	return t, nil
}

// IDs returns the numbers of all supported tables in increasing order.
func IDs() []int {
	ids := make([]int, 0, len(tables))
	for id := range tables {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
