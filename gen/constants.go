// Package gen defines the canonical combinator names used to prefix panic
// values, so a recovered error says which combinator failed.
package gen

const (
	// MethodCycle is the canonical name for the Cycle combinator.
	MethodCycle = "Cycle"
	// MethodRepeat is the canonical name for the Repeat combinator.
	MethodRepeat = "Repeat"
	// MethodSome is the canonical name for the Some combinator.
	MethodSome = "Some"
	// MethodSample is the canonical name for the Sample combinator.
	MethodSample = "Sample"
	// MethodPattern is the canonical name for the Pattern combinator.
	MethodPattern = "Pattern"
	// MethodMap is the canonical name for the Map combinator.
	MethodMap = "Map"
	// MethodLabel is the canonical name for the Label combinator.
	MethodLabel = "Label"
	// MethodIterator is the canonical name for the iterator adapters.
	MethodIterator = "Iterator"
)
