package record

// Kind names the declared source of a Field.
type Kind int

const (
	// KindZero resolves to the zero value of the field type.
	KindZero Kind = iota
	// KindDefault resolves to a literal default value.
	KindDefault
	// KindGenerator draws from a declared generator.
	KindGenerator
	// KindBuildable builds a fresh nested record per draw.
	KindBuildable
	// KindGeneratable draws from a nested record generator.
	KindGeneratable
	// KindSequence fills a slice with a fixed number of elements.
	KindSequence
	// KindSequenceGenerated fills a slice whose length comes from a generator.
	KindSequenceGenerated
)

var kindNames = [...]string{
	KindZero:              "zero",
	KindDefault:           "default",
	KindGenerator:         "generator",
	KindBuildable:         "buildable",
	KindGeneratable:       "generatable",
	KindSequence:          "sequence",
	KindSequenceGenerated: "sequence_generator",
}

// String returns the lowercase name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// sourceOverride is the source name reported for overridden fields.
const sourceOverride = "override"
