package calc

import "strconv"

// InputError is an error caused by malformed source text. Every error from
// Parse or ParseStatements implements it.
type InputError interface {
	error
	// Pos is the column of the token that caused the error, counting runes
	// from 1.
	Pos() int
}

// at prefixes a message with a column.
func at(col int, msg string) string {
	return "column " + strconv.Itoa(col) + ": " + msg
}

// OperatorPlace is where an operator appeared that it cannot be used.
type OperatorPlace uint8

const (
	// PlaceOperand is the start of a term, where a value was expected.
	PlaceOperand OperatorPlace = iota
	// PlaceInfix is between two terms.
	PlaceInfix
	// PlaceStatement is an assignment after the start of a statement.
	PlaceStatement
	// PlaceValue is an assignment in source that must be a plain value, as
	// with Context.Set.
	PlaceValue
)

// OperatorError is an error indicating an operator used where the grammar
// does not allow it.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator as written.
	Operator string
	// Place is where the operator appeared.
	Place OperatorPlace
}

func (err *OperatorError) Error() string {
	op := strconv.Quote(err.Operator)
	switch err.Place {
	case PlaceOperand:
		if isConversion(err.Operator) {
			return at(err.Col, "conversion "+op+" has nothing to convert")
		}
		if err.Operator == "." || err.Operator == ":" {
			return at(err.Col, op+" without a function parameter")
		}
		return at(err.Col, "expected a value, found "+op)
	case PlaceStatement:
		return at(err.Col, "assignment must be the first thing in a statement, as in x = 1")
	case PlaceValue:
		return at(err.Col, "assignment "+op+" where a value is expected")
	default:
		if err.Operator == "." || err.Operator == ":" {
			return at(err.Col, op+" only separates a function parameter from its body")
		}
		return at(err.Col, "unknown operator "+op)
	}
}

func (err *OperatorError) Pos() int {
	return err.Col
}

func isConversion(op string) bool {
	return op == "->" || op == "to" || op == "as"
}

// BracketError is an error indicating a bracket without its partner.
type BracketError struct {
	// Col is the position of the closing bracket, or of the end of input for
	// an unclosed bracket.
	Col int
	// Open and OpenCol are the opening bracket and its position. Open is
	// empty for a closing bracket with no partner.
	Open    string
	OpenCol int
	// Close is the closing bracket found, or empty at the end of input.
	Close string
}

func (err *BracketError) Error() string {
	switch {
	case err.Open == "":
		return at(err.Col, "unmatched "+err.Close)
	case err.Close == "":
		return at(err.Col, err.Open+" from column "+strconv.Itoa(err.OpenCol)+" is never closed")
	default:
		return at(err.Col, err.Open+" from column "+strconv.Itoa(err.OpenCol)+" is closed by "+err.Close)
	}
}

func (err *BracketError) Pos() int {
	return err.Col
}

// SeparatorError is an error indicating a separator where a statement cannot
// end.
type SeparatorError struct {
	// Col is the position of the separator.
	Col int
	// Sep is the separator.
	Sep string
	// InBrackets is true when the separator interrupted a bracketed term.
	InBrackets bool
}

func (err *SeparatorError) Error() string {
	sep := strconv.Quote(err.Sep)
	switch {
	case err.InBrackets:
		return at(err.Col, "separator "+sep+" inside brackets")
	case err.Sep == ";":
		return at(err.Col, "separator "+sep+" after a single expression")
	default:
		return at(err.Col, "unexpected separator "+sep)
	}
}

func (err *SeparatorError) Pos() int {
	return err.Col
}

// LambdaError is an error indicating a function literal without a parameter
// name followed by a dot.
type LambdaError struct {
	// Col is the position of the unexpected token.
	Col int
	// Text is the unexpected token.
	Text string
}

func (err *LambdaError) Error() string {
	if err.Text == "" {
		return at(err.Col, "incomplete function")
	}
	return at(err.Col, "expected parameter and dot in function, not "+strconv.Quote(err.Text))
}

func (err *LambdaError) Pos() int {
	return err.Col
}

// MissingTermError is an error indicating that a part of an expression is
// absent, as in "1 +" or "()".
type MissingTermError struct {
	// Col is the position of the token found instead.
	Col int
	// End is the token found instead, or empty at the end of input.
	End string
	// Term describes what is missing, e.g. `right operand of "+"`.
	Term string
}

func (err *MissingTermError) Error() string {
	if err.End == "" {
		return at(err.Col, "missing "+err.Term+" at end of input")
	}
	return at(err.Col, "missing "+err.Term+" before "+strconv.Quote(err.End))
}

func (err *MissingTermError) Pos() int {
	return err.Col
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*SeparatorError)(nil)
	_ InputError = (*LambdaError)(nil)
	_ InputError = (*MissingTermError)(nil)
	_ InputError = (*LexError)(nil)
)
