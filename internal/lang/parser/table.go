package parser

// NotAnOperator is the precedence reported for any character that is not a
// registered binary operator.
const NotAnOperator = -1

// Table maps binary-operator characters to their precedence. Higher binds
// tighter. The table is populated before parsing begins and read-only
// afterward; new operators can be registered without touching parse logic.
type Table struct {
	prec map[byte]int
}

// NewTable returns a table seeded with the built-in operators.
func NewTable() *Table {
	return &Table{prec: map[byte]int{
		'<': 10,
		'+': 20,
		'-': 30,
		'*': 40,
	}}
}

// Set registers op with the given precedence, replacing any existing entry.
func (t *Table) Set(op byte, precedence int) {
	t.prec[op] = precedence
}

// Precedence returns the precedence of op, or NotAnOperator if op is not
// registered with a positive precedence.
func (t *Table) Precedence(op byte) int {
	p, ok := t.prec[op]
	if !ok || p <= 0 {
		return NotAnOperator
	}
	return p
}
